package commands

import (
	"errors"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/errs"
	"jelantah/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand edits a customer's profile. Contact fields stay
// required; the map link and bank account may be set or cleared. Orders
// created earlier keep the contact snapshot they were created with.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	name     string
	phone    string
	address  string
	district string
	city     string

	shareLocation string
	bankAccount   string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to edit a customer profile.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name, phone, address, district, city string,
	shareLocation, bankAccount string,
) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setContact(name, phone, address, district, city),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	command.shareLocation = shareLocation
	command.bankAccount = bankAccount

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being edited.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's street address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// District returns the customer's district.
func (c UpdateCustomerCommand) District() string {
	return c.district
}

// City returns the customer's city.
func (c UpdateCustomerCommand) City() string {
	return c.city
}

// ShareLocation returns the shareable map link, empty to clear it.
func (c UpdateCustomerCommand) ShareLocation() string {
	return c.shareLocation
}

// BankAccount returns the settlement account, empty to clear it.
func (c UpdateCustomerCommand) BankAccount() string {
	return c.bankAccount
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setContact(name, phone, address, district, city string) error {
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
