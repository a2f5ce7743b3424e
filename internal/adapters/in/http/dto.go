package http

import (
	"time"

	"opspro/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries credentials for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse describes the identity established by a successful login.
type LoginResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	PartnerID *int64 `json:"partnerId,omitempty"`
}

// CreateOrderRequest carries the payload for POST /api/orders.
type CreateOrderRequest struct {
	OrderID  string `json:"orderId"`
	Items    string `json:"items"`
	PrepTime int    `json:"prepTime"`
}

// CreatePartnerRequest carries the payload for POST /api/partners.
type CreatePartnerRequest struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// PartnerSummary is the partner block embedded in order payloads.
type PartnerSummary struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	IsAvailable bool   `json:"isAvailable"`
	ETA         *int   `json:"eta,omitempty"`
}

// OrderPayload is the wire form of one order.
type OrderPayload struct {
	ID              int64           `json:"id"`
	OrderID         string          `json:"orderId"`
	Items           string          `json:"items"`
	PrepTime        int             `json:"prepTime"`
	Status          string          `json:"status"`
	AssignedPartner *PartnerSummary `json:"assignedPartner,omitempty"`
	DispatchTime    *time.Time      `json:"dispatchTime,omitempty"`
	DeliveryTime    *time.Time      `json:"deliveryTime,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PartnerPayload is the wire form of one delivery partner.
type PartnerPayload struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	PhoneNumber   string    `json:"phoneNumber"`
	IsAvailable   bool      `json:"isAvailable"`
	ETA           *int      `json:"eta,omitempty"`
	ActiveOrderID *int64    `json:"activeOrderId,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// toOrderPayload maps an order read model onto its wire form.
func toOrderPayload(o queries.OrderResponse) OrderPayload {
	payload := OrderPayload{
		ID:           o.ID,
		OrderID:      o.OrderRef,
		Items:        o.Items,
		PrepTime:     o.PrepTime,
		Status:       o.Status,
		DispatchTime: o.DispatchTime,
		DeliveryTime: o.DeliveryTime,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}

	if o.AssignedPartner != nil {
		payload.AssignedPartner = &PartnerSummary{
			ID:          o.AssignedPartner.ID,
			Username:    o.AssignedPartner.Username,
			Name:        o.AssignedPartner.Name,
			PhoneNumber: o.AssignedPartner.PhoneNumber,
			IsAvailable: o.AssignedPartner.IsAvailable,
			ETA:         o.AssignedPartner.ETA,
		}
	}

	return payload
}

// toPartnerPayload maps a partner read model onto its wire form.
func toPartnerPayload(p queries.PartnerResponse) PartnerPayload {
	return PartnerPayload{
		ID:            p.ID,
		Username:      p.Username,
		Name:          p.Name,
		PhoneNumber:   p.PhoneNumber,
		IsAvailable:   p.IsAvailable,
		ETA:           p.ETA,
		ActiveOrderID: p.ActiveOrderID,
		UpdatedAt:     p.UpdatedAt,
	}
}
