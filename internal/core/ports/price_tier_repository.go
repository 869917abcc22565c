package ports

import (
	"context"

	"jelantah/internal/core/domain/model/pricing"
)

// PriceTierRepository provides the current tiered price list.
type PriceTierRepository interface {
	// GetTable retrieves all configured price tiers as a lookup table.
	GetTable(ctx context.Context) (pricing.Table, error)
}
