package ports

import (
	"context"

	"jelantah/internal/core/domain/model/order"
)

// Notifier pushes human-facing notifications about order progress.
// Notification failures are reported to the caller but must never fail
// the business operation that triggered them.
type Notifier interface {
	// NotifyOrderAssigned announces that a courier took the pickup.
	NotifyOrderAssigned(ctx context.Context, aggregate *order.Order) error

	// NotifyOrderPaid announces that the payout for a pickup was settled.
	NotifyOrderPaid(ctx context.Context, aggregate *order.Order) error
}
