// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"opspro/internal/core/domain/model/order"
	"opspro/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for the dashboard board view, optionally
// filtered to a single lifecycle status.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve every order, newest first.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery creates a query restricted to one status column
// of the board.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// AssignedPartnerResponse is the partner summary embedded in order read models.
type AssignedPartnerResponse struct {
	ID          int64
	Username    string
	Name        string
	PhoneNumber string
	IsAvailable bool
	ETA         *int
}

// OrderResponse represents one order in the dashboard read model.
// Status carries the wire form (PREP, READY, PICKED, ON_ROUTE, DELIVERED).
type OrderResponse struct {
	ID              int64
	OrderRef        string
	Items           string
	PrepTime        int
	Status          string
	AssignedPartner *AssignedPartnerResponse
	DispatchTime    *time.Time
	DeliveryTime    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
