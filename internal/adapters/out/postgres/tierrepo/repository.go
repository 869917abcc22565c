// Package tierrepo provides read access to the tiered price list.
// Tiers are reference data managed by migrations or back office tooling,
// so the repository is read-only.
package tierrepo

import (
	"context"

	"jelantah/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// PriceTierDTO represents one row of the price list.
type PriceTierDTO struct {
	ID            int   `gorm:"primaryKey;autoIncrement"`
	MinLiter      int   `gorm:"not null"`
	MaxLiter      int   `gorm:"not null"`
	PricePerLiter int64 `gorm:"not null"`
}

// TableName specifies the database table name for price tiers.
func (PriceTierDTO) TableName() string {
	return "price_tiers"
}

// GormPriceTierRepository implements PriceTierRepository using GORM.
type GormPriceTierRepository struct {
	db *gorm.DB
}

// NewGormPriceTierRepository creates a new GORM price tier repository.
func NewGormPriceTierRepository(db *gorm.DB) *GormPriceTierRepository {
	return &GormPriceTierRepository{db: db}
}

// GetTable retrieves all configured price tiers as a lookup table.
func (r *GormPriceTierRepository) GetTable(ctx context.Context) (pricing.Table, error) {
	var dtos []PriceTierDTO
	if err := r.db.WithContext(ctx).Order("min_liter").Find(&dtos).Error; err != nil {
		return pricing.Table{}, err
	}

	tiers := make([]pricing.PriceTier, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := pricing.NewPriceTier(dto.MinLiter, dto.MaxLiter, dto.PricePerLiter)
		if err != nil {
			return pricing.Table{}, err
		}
		tiers = append(tiers, tier)
	}

	return pricing.NewTable(tiers)
}
