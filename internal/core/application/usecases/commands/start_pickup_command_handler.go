package commands

import (
	"context"
	"log/slog"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
)

// StartPickupCommandHandler moves an assigned order to InProgress on
// behalf of its courier.
type StartPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewStartPickupCommandHandler creates a handler for pickup starts.
func NewStartPickupCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) StartPickupCommandHandler {
	return StartPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start command. Only the assigned courier passes
// the aggregate's ownership check.
func (h *StartPickupCommandHandler) Handle(ctx context.Context, cmd StartPickupCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Start(cmd.Actor()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishStatusChanged(ctx, aggregate, order.TransitionStart); err != nil {
		slog.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
