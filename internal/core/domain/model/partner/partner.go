package partner

import (
	"errors"
	"fmt"
	"time"

	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"
	"opspro/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner or RestoreDeliveryPartner")

	// ErrPartnerIDAlreadyAttached is returned when AttachID is called on a
	// partner that already carries a server-assigned identifier.
	ErrPartnerIDAlreadyAttached = errors.New("partner already has a server-assigned id")
)

// DeliveryPartner represents an actor who fulfills assigned orders.
// It is an aggregate root managing partner identity, the availability flag,
// and the optional ETA estimate.
//
// Business rules:
//   - Username, name, and phone number are non-empty
//   - The availability flag expresses readiness for FUTURE assignment only;
//     turning it off never force-unassigns an order the partner already
//     holds
//   - Whether a partner is actually assignable is a derived rule over the
//     full order set (availability flag AND no active assignment) computed
//     by the services package, never stored here
type DeliveryPartner struct {
	// id is the server-assigned identifier; zero until persisted
	id kernel.ID

	// username links the partner to its login account
	username string

	// name is the human-readable partner name
	name string

	// phoneNumber is the contact number
	phoneNumber string

	// isAvailable expresses readiness for future assignment
	isAvailable bool

	// eta is the partner's estimated arrival time in minutes (nil if unset)
	eta *int

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a new DeliveryPartner with the specified
// roster attributes. The server-assigned identifier is attached by the
// repository on first persist.
//
// Returns a ValidationError if username, name, or phone number is empty.
func NewDeliveryPartner(username, name, phoneNumber string, isAvailable bool, now time.Time) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isAvailable: isAvailable,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setUsername(username),
		p.setName(name),
		p.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a DeliveryPartner aggregate from
// persistent storage, including the availability flag and ETA.
func RestoreDeliveryPartner(
	id kernel.ID,
	username, name, phoneNumber string,
	isAvailable bool,
	eta *int,
	createdAt, updatedAt time.Time,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		p.setUsername(username),
		p.setName(name),
		p.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	p.id = id
	if eta != nil {
		if err := p.SetETA(*eta, updatedAt); err != nil {
			return nil, err
		}
		p.updatedAt = updatedAt
	}

	return p, nil
}

// Validate ensures the DeliveryPartner was properly constructed through a
// factory method.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their server-assigned identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the server-assigned identifier.
// The zero ID is returned for partners that have not been persisted yet.
func (p *DeliveryPartner) ID() kernel.ID {
	return p.id
}

// AttachID binds the server-assigned identifier to a freshly persisted partner.
func (p *DeliveryPartner) AttachID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if p.id.Validate() == nil {
		return ErrPartnerIDAlreadyAttached
	}

	p.id = id
	return nil
}

// Username returns the login name linking the partner to its account.
func (p *DeliveryPartner) Username() string {
	return p.username
}

// Name returns the human-readable partner name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// PhoneNumber returns the partner's contact number.
func (p *DeliveryPartner) PhoneNumber() string {
	return p.phoneNumber
}

// IsAvailable reports the partner's readiness for future assignment.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.isAvailable
}

// ETA returns the partner's estimated arrival time in minutes, or nil.
func (p *DeliveryPartner) ETA() *int {
	if p.eta == nil {
		return nil
	}
	eta := *p.eta
	return &eta
}

// CreatedAt returns the creation timestamp.
func (p *DeliveryPartner) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (p *DeliveryPartner) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetAvailability updates the availability flag.
//
// The flag only governs eligibility for future assignment; an active
// assignment the partner already holds is unaffected. Identity enforcement
// (only the partner itself may toggle) happens in the application layer
// where the acting session is known.
func (p *DeliveryPartner) SetAvailability(isAvailable bool, now time.Time) {
	p.isAvailable = isAvailable
	p.updatedAt = now
}

// SetETA updates the partner's estimated arrival time in minutes.
// Returns a ValidationError for negative values.
func (p *DeliveryPartner) SetETA(eta int, now time.Time) error {
	if eta < 0 {
		return errs.NewValidationErrorWithCause("eta",
			fmt.Errorf("%d is negative", eta))
	}

	value := eta
	p.eta = &value
	p.updatedAt = now
	return nil
}

func (p *DeliveryPartner) setUsername(username string) error {
	if username == "" {
		return errs.NewValidationError("username")
	}
	p.username = username
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("name")
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValidationError("phoneNumber")
	}
	p.phoneNumber = phoneNumber
	return nil
}
