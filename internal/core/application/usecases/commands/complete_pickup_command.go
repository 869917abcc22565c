package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var (
	ErrCompletePickupCommandIsNotConstructed = errors.New(
		"CompletePickupCommand must be created via NewCompletePickupCommand constructor",
	)
	ErrActualLitersIsInvalid  = errors.New("actual liters must be greater than 0")
	ErrPickupPhotoIsRequired  = errors.New("pickup photo reference is required")
	ErrPaymentProofIsRequired = errors.New("payment proof reference is required")
)

// CompletePickupCommand represents the courier recording the collected
// volume and photo evidence at the customer's location.
type CompletePickupCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          kernel.Actor
	actualLiters   int
	pickupPhotoRef string

	guard guard.ConstructorGuard
}

// NewCompletePickupCommand creates a command to complete a pickup.
// The measured volume must be positive and a photo reference is mandatory
// evidence for the warehouse check.
func NewCompletePickupCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	actualLiters int,
	pickupPhotoRef string,
) (CompletePickupCommand, error) {
	command := CompletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActor(actor),
		command.setActualLiters(actualLiters),
		command.setPickupPhotoRef(pickupPhotoRef),
	); err != nil {
		return CompletePickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickupCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickupCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompletePickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated identity completing the pickup.
func (c CompletePickupCommand) Actor() kernel.Actor {
	return c.actor
}

// ActualLiters returns the measured collected volume.
func (c CompletePickupCommand) ActualLiters() int {
	return c.actualLiters
}

// PickupPhotoRef returns the storage reference of the pickup evidence.
func (c CompletePickupCommand) PickupPhotoRef() string {
	return c.pickupPhotoRef
}

func (c *CompletePickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompletePickupCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompletePickupCommand) setActualLiters(actualLiters int) error {
	if actualLiters <= 0 {
		return ErrActualLitersIsInvalid
	}

	c.actualLiters = actualLiters
	return nil
}

func (c *CompletePickupCommand) setPickupPhotoRef(pickupPhotoRef string) error {
	if pickupPhotoRef == "" {
		return ErrPickupPhotoIsRequired
	}

	c.pickupPhotoRef = pickupPhotoRef
	return nil
}
