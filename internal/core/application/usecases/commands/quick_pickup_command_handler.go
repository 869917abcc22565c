package commands

import (
	"context"

	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/order"
)

// QuickPickupCommandHandler registers a new customer together with their
// first pickup order. Both writes share one transaction so a failed
// order creation never leaves an orphaned customer behind.
type QuickPickupCommandHandler struct {
	uowFactory UoWFactory
}

// NewQuickPickupCommandHandler creates a handler for the quick-pickup flow.
func NewQuickPickupCommandHandler(uowFactory UoWFactory) QuickPickupCommandHandler {
	return QuickPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quick-pickup command. When a referrer is named it
// must already exist; the referral link is established before the new
// customer is persisted.
func (h *QuickPickupCommandHandler) Handle(ctx context.Context, cmd QuickPickupCommand) error {
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

	client, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Phone(), cmd.Address(), cmd.District(), cmd.City(),
	)
	if err != nil {
		return err
	}

	if cmd.ReferrerID() != nil {
		referrer, refErr := uow.CustomerRepository().Get(ctx, *cmd.ReferrerID())
		if refErr != nil {
			return refErr
		}
		if refErr = customer.LinkReferral(referrer, client); refErr != nil {
			return refErr
		}
		if refErr = uow.CustomerRepository().Update(ctx, referrer); refErr != nil {
			return refErr
		}
	}

	if err = uow.CustomerRepository().Add(ctx, client); err != nil {
		return err
	}

	snapshot, err := client.Snapshot()
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), client.ID(), snapshot, cmd.EstimatedLiters())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
