package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrEstimatedLitersIsInvalid = errors.New("estimated liters must be greater than 0")
)

// CreateOrderCommand represents a request to register a new pickup order
// for a customer's used cooking oil.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, 25)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting courier assignment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	estimatedLiters int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new pickup order.
// Validates that both identifiers are valid and the estimated volume is
// positive. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, estimatedLiters int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setEstimatedLiters(estimatedLiters),
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

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer requesting the pickup.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// EstimatedLiters returns the customer's declared volume in liters.
func (c CreateOrderCommand) EstimatedLiters() int {
	return c.estimatedLiters
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setEstimatedLiters(estimatedLiters int) error {
	if estimatedLiters <= 0 {
		return ErrEstimatedLitersIsInvalid
	}

	c.estimatedLiters = estimatedLiters
	return nil
}
