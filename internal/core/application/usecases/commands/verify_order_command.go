package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var ErrVerifyOrderCommandIsNotConstructed = errors.New(
	"VerifyOrderCommand must be created via NewVerifyOrderCommand constructor",
)

// VerifyOrderCommand represents the warehouse confirming the collected
// volume of a completed order.
type VerifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewVerifyOrderCommand creates a command to verify a completed order.
func NewVerifyOrderCommand(orderID kernel.UUID, actor kernel.Actor) (VerifyOrderCommand, error) {
	command := VerifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
	); err != nil {
		return VerifyOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being verified.
func (c VerifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated identity performing the verification.
func (c VerifyOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *VerifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
