package ports

import (
	"context"

	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates, including the referral relation stored on each record.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetWithReferrer retrieves a customer together with its direct
	// referrer record when one exists. The returned referrer is nil for
	// customers without one.
	GetWithReferrer(ctx context.Context, id kernel.UUID) (*customer.Customer, *customer.Customer, error)
}
