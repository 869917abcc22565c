package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/errs"
	"jelantah/internal/pkg/guard"
)

var ErrQuickPickupCommandIsNotConstructed = errors.New(
	"QuickPickupCommand must be created via NewQuickPickupCommand constructor",
)

// QuickPickupCommand registers a walk-in customer and their first pickup
// order in one transaction. The office uses it when someone calls in who
// is not in the system yet; an optional referrer links the new customer
// into the referral program.
type QuickPickupCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	name     string
	phone    string
	address  string
	district string
	city     string

	estimatedLiters int
	referrerID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewQuickPickupCommand creates a command for the quick-pickup flow.
// Pass a nil referrerID when the customer was not referred.
func NewQuickPickupCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	name, phone, address, district, city string,
	estimatedLiters int,
	referrerID *kernel.UUID,
) (QuickPickupCommand, error) {
	command := QuickPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setContact(name, phone, address, district, city),
		command.setEstimatedLiters(estimatedLiters),
		command.setReferrerID(referrerID),
	); err != nil {
		return QuickPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c QuickPickupCommand) Validate() error {
	return c.guard.Validate(ErrQuickPickupCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c QuickPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier assigned to the new customer.
func (c QuickPickupCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's name.
func (c QuickPickupCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c QuickPickupCommand) Phone() string {
	return c.phone
}

// Address returns the customer's street address.
func (c QuickPickupCommand) Address() string {
	return c.address
}

// District returns the customer's district.
func (c QuickPickupCommand) District() string {
	return c.district
}

// City returns the customer's city.
func (c QuickPickupCommand) City() string {
	return c.city
}

// EstimatedLiters returns the declared volume in liters.
func (c QuickPickupCommand) EstimatedLiters() int {
	return c.estimatedLiters
}

// ReferrerID returns the referring customer, or nil when none.
func (c QuickPickupCommand) ReferrerID() *kernel.UUID {
	return c.referrerID
}

func (c *QuickPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *QuickPickupCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *QuickPickupCommand) setContact(name, phone, address, district, city string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.name = name
	c.phone = phone
	c.address = address
	c.district = district
	c.city = city
	return nil
}

func (c *QuickPickupCommand) setEstimatedLiters(estimatedLiters int) error {
	if estimatedLiters <= 0 {
		return ErrEstimatedLitersIsInvalid
	}

	c.estimatedLiters = estimatedLiters
	return nil
}

func (c *QuickPickupCommand) setReferrerID(referrerID *kernel.UUID) error {
	if referrerID == nil {
		return nil
	}
	if err := referrerID.Validate(); err != nil {
		return err
	}

	id := *referrerID
	c.referrerID = &id
	return nil
}
