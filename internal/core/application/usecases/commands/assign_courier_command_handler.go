package commands

import (
	"context"
	"log/slog"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
)

// AssignCourierCommandHandler handles courier assignment for pending orders.
// The aggregate enforces the guard sequence; the handler owns the
// transaction and the post-commit side effects.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	notifier   ports.Notifier
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	notifier ports.Notifier,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
// On success the status change is published to the broker and the courier
// is notified; both are best effort and never fail the command.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	if err = aggregate.Assign(cmd.Actor(), cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishStatusChanged(ctx, aggregate, order.TransitionAssign); err != nil {
		slog.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID(), "error", err)
	}
	if err = h.notifier.NotifyOrderAssigned(ctx, aggregate); err != nil {
		slog.WarnContext(ctx, "failed to notify courier assignment",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
