package commands

import (
	"context"
)

// UpdateCustomerCommandHandler applies a profile edit to an existing
// customer.
type UpdateCustomerCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for profile edits.
func NewUpdateCustomerCommandHandler(uowFactory UoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile edit command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	client, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	err = client.UpdateProfile(
		cmd.Name(), cmd.Phone(), cmd.Address(), cmd.District(), cmd.City(),
		cmd.ShareLocation(), cmd.BankAccount(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, client); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
