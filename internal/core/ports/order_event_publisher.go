package ports

import (
	"context"

	"jelantah/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle changes to the message
// broker so downstream consumers can react to pickups moving through the
// flow. Publishing happens after the transaction commits; a delivery
// failure is logged, never rolled into the business transaction.
type OrderEventPublisher interface {
	// PublishStatusChanged publishes the state the order reached through
	// the given transition.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order, transition order.Transition) error
}
