package commands

import (
	"errors"

	"opspro/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderRefIsRequired = errors.New("orderId is required")
	ErrItemsAreRequired   = errors.New("items are required")
	ErrPrepTimeIsInvalid  = errors.New("prepTime must be greater than 0")
)

// CreateOrderCommand represents a request to register a new delivery order.
// Encapsulates the external order reference, the item summary, and the
// kitchen preparation time in minutes.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-1042", "Paneer Tikka x1", 20)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	items    string
	prepTime int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order reference and items are not empty and that the
// preparation time is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(orderRef, items string, prepTime int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderRef(orderRef),
		orderCommand.setItems(items),
		orderCommand.setPrepTime(prepTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderRef returns the external order reference shown to customers.
func (c CreateOrderCommand) OrderRef() string {
	return c.orderRef
}

// Items returns the human-readable item summary.
func (c CreateOrderCommand) Items() string {
	return c.items
}

// PrepTime returns the kitchen preparation time in minutes.
func (c CreateOrderCommand) PrepTime() int {
	return c.prepTime
}

func (c *CreateOrderCommand) setOrderRef(orderRef string) error {
	if orderRef == "" {
		return ErrOrderRefIsRequired
	}

	c.orderRef = orderRef
	return nil
}

func (c *CreateOrderCommand) setItems(items string) error {
	if items == "" {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPrepTime(prepTime int) error {
	if prepTime <= 0 {
		return ErrPrepTimeIsInvalid
	}

	c.prepTime = prepTime
	return nil
}
