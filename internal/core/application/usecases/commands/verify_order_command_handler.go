package commands

import (
	"context"
	"fmt"
	"log/slog"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
)

// VerifyOrderCommandHandler confirms a completed order at the warehouse.
//
// Verification is the only transition that touches two aggregates: the
// order moves to Verified and the customer's running total is credited
// with the verified volume, atomically in one transaction. It also makes
// the order billable, so the cached billing report is invalidated.
type VerifyOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	cache      ports.ReportCache
}

// NewVerifyOrderCommandHandler creates a handler for warehouse verification.
func NewVerifyOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	cache ports.ReportCache,
) VerifyOrderCommandHandler {
	return VerifyOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
	}
}

// Handle processes the verification command.
func (h *VerifyOrderCommandHandler) Handle(ctx context.Context, cmd VerifyOrderCommand) error {
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

	if err = aggregate.Verify(cmd.Actor()); err != nil {
		return err
	}

	actualLiters := aggregate.ActualLiters()
	if actualLiters == nil {
		return fmt.Errorf("verified order %s has no recorded actual liters", aggregate.ID())
	}

	client, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = client.AddCollectedLiters(*actualLiters); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, client); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.InvalidateByPrefix(ctx, ports.BillingReportCachePrefix); err != nil {
		slog.WarnContext(ctx, "failed to invalidate billing report cache",
			"order_id", aggregate.ID(), "error", err)
	}
	if err = h.publisher.PublishStatusChanged(ctx, aggregate, order.TransitionVerify); err != nil {
		slog.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
