package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var ErrStartPickupCommandIsNotConstructed = errors.New(
	"StartPickupCommand must be created via NewStartPickupCommand constructor",
)

// StartPickupCommand represents the assigned courier declaring they are
// on the way to the customer.
type StartPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartPickupCommand creates a command to start a pickup.
func NewStartPickupCommand(orderID kernel.UUID, actor kernel.Actor) (StartPickupCommand, error) {
	command := StartPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
	); err != nil {
		return StartPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickupCommand) Validate() error {
	return c.guard.Validate(ErrStartPickupCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being started.
func (c StartPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated identity starting the pickup.
func (c StartPickupCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartPickupCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
