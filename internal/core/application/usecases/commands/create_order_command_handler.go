package commands

import (
	"context"

	"jelantah/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Looks up the requesting customer, denormalizes its contact details into
// the order snapshot and creates the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation reads the customer aggregate for
// the snapshot.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The customer must exist; its contact details at creation time are frozen
// into the order so later profile edits never rewrite history.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	snapshot, err := client.Snapshot()
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), snapshot, cmd.EstimatedLiters())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
