package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents the office settling the payout for a
// verified order, with transfer evidence attached.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.Actor
	paymentProofRef string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to settle a verified order.
// A payment proof reference is mandatory evidence of the transfer.
func NewMarkOrderPaidCommand(orderID kernel.UUID, actor kernel.Actor, paymentProofRef string) (MarkOrderPaidCommand, error) {
	command := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setPaymentProofRef(paymentProofRef),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated identity settling the payment.
func (c MarkOrderPaidCommand) Actor() kernel.Actor {
	return c.actor
}

// PaymentProofRef returns the storage reference of the transfer evidence.
func (c MarkOrderPaidCommand) PaymentProofRef() string {
	return c.paymentProofRef
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkOrderPaidCommand) setPaymentProofRef(paymentProofRef string) error {
	if paymentProofRef == "" {
		return ErrPaymentProofIsRequired
	}

	c.paymentProofRef = paymentProofRef
	return nil
}
