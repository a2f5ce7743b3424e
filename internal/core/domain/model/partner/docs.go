// Package partner provides the DeliveryPartner aggregate for the
// delivery-operations system.
//
// A delivery partner carries an availability flag and an optional ETA.
// The flag expresses readiness for future assignment only; whether a
// partner can actually receive a new order is a derived rule over the whole
// order set (available AND no active assignment) that lives in the services
// package, so the two concerns never drift apart.
package partner
