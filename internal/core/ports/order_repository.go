// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached the Paid
	// status, ordered by creation time.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveByCourier retrieves the active orders assigned to the
	// given courier.
	GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
