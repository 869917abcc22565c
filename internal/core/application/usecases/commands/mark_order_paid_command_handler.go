package commands

import (
	"context"
	"log/slog"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
)

// MarkOrderPaidCommandHandler settles a verified order. This is the
// terminal transition; the order leaves the active set and the billing
// report changes, so the cached report is invalidated and the customer
// is notified about the transfer.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	notifier   ports.Notifier
	cache      ports.ReportCache
}

// NewMarkOrderPaidCommandHandler creates a handler for payment settlement.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	notifier ports.Notifier,
	cache ports.ReportCache,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
		cache:      cache,
	}
}

// Handle processes the settlement command.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	if err = aggregate.MarkPaid(cmd.Actor(), cmd.PaymentProofRef()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.InvalidateByPrefix(ctx, ports.BillingReportCachePrefix); err != nil {
		slog.WarnContext(ctx, "failed to invalidate billing report cache",
			"order_id", aggregate.ID(), "error", err)
	}
	if err = h.publisher.PublishStatusChanged(ctx, aggregate, order.TransitionMarkPaid); err != nil {
		slog.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID(), "error", err)
	}
	if err = h.notifier.NotifyOrderPaid(ctx, aggregate); err != nil {
		slog.WarnContext(ctx, "failed to notify payment",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
