package commands

import (
	"context"
	"log/slog"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
)

// CompletePickupCommandHandler records the collected volume for an
// in-progress order on behalf of its courier.
type CompletePickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCompletePickupCommandHandler creates a handler for pickup completion.
func NewCompletePickupCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) CompletePickupCommandHandler {
	return CompletePickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command. The recorded volume stays
// provisional until the warehouse verifies it; nothing is credited here.
func (h *CompletePickupCommandHandler) Handle(ctx context.Context, cmd CompletePickupCommand) error {
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

	if err = aggregate.Complete(cmd.Actor(), cmd.ActualLiters(), cmd.PickupPhotoRef()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishStatusChanged(ctx, aggregate, order.TransitionComplete); err != nil {
		slog.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
