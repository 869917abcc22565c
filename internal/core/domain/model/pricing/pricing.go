package pricing

import (
	"errors"
	"fmt"
	"sort"

	"jelantah/internal/pkg/errs"
	"jelantah/internal/pkg/guard"
)

// UnboundedMax marks a tier with no upper liter bound. The top tier of a
// well-formed table is open-ended so every volume above the last
// boundary still prices.
const UnboundedMax = -1

// Errors for pricing operations.
var (
	// ErrPriceTierIsNotConstructed is returned when using an improperly
	// initialized PriceTier.
	ErrPriceTierIsNotConstructed = errors.New("PriceTier must be created via NewPriceTier constructor")
	// ErrNoMatchingTier is returned when no tier matches the requested
	// volume. A lookup never silently prices at zero.
	ErrNoMatchingTier = errors.New("no price tier matches the requested liters")
)

// PriceTier is a liter band [minLiter, maxLiter] with a per-liter price.
// maxLiter == UnboundedMax means the band has no upper bound.
// PriceTier is an immutable value object.
type PriceTier struct { //nolint:recvcheck //using for validation
	minLiter      int
	maxLiter      int
	pricePerLiter int64

	guard guard.ConstructorGuard
}

// NewPriceTier creates a tier. minLiter must be non-negative, the price
// positive, and maxLiter either UnboundedMax or at least minLiter.
func NewPriceTier(minLiter, maxLiter int, pricePerLiter int64) (PriceTier, error) {
	if minLiter < 0 {
		return PriceTier{}, errs.NewValueIsInvalidErrorWithCause("minLiter",
			fmt.Errorf("%d is negative", minLiter))
	}
	if maxLiter != UnboundedMax && maxLiter < minLiter {
		return PriceTier{}, errs.NewValueIsInvalidErrorWithCause("maxLiter",
			fmt.Errorf("%d is less than minLiter %d", maxLiter, minLiter))
	}
	if pricePerLiter <= 0 {
		return PriceTier{}, errs.NewValueIsInvalidErrorWithCause("pricePerLiter",
			fmt.Errorf("%d is not greater than 0", pricePerLiter))
	}

	return PriceTier{
		minLiter:      minLiter,
		maxLiter:      maxLiter,
		pricePerLiter: pricePerLiter,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the tier was created through the constructor.
func (t PriceTier) Validate() error {
	return t.guard.Validate(ErrPriceTierIsNotConstructed)
}

// MinLiter returns the inclusive lower bound of the band.
func (t PriceTier) MinLiter() int {
	return t.minLiter
}

// MaxLiter returns the inclusive upper bound, or UnboundedMax for an
// open-ended band.
func (t PriceTier) MaxLiter() int {
	return t.maxLiter
}

// PricePerLiter returns the per-liter price of the band.
func (t PriceTier) PricePerLiter() int64 {
	return t.pricePerLiter
}

// IsOpenEnded reports whether the band has no upper bound.
func (t PriceTier) IsOpenEnded() bool {
	return t.maxLiter == UnboundedMax
}

// Contains reports whether the given volume falls inside the band,
// boundaries inclusive.
func (t PriceTier) Contains(liters int) bool {
	if liters < t.minLiter {
		return false
	}
	return t.IsOpenEnded() || liters <= t.maxLiter
}

// Table is an ordered set of price tiers. Lookup scans tiers in
// ascending minLiter order and the first matching band wins; for a
// well-formed table bands do not overlap. An ill-formed table is not
// silently fixed; the first matching band still wins.
type Table struct {
	tiers []PriceTier
}

// NewTable creates a table from the given tiers, sorted ascending by
// minLiter. An empty table is valid to construct; every lookup against
// it fails with ErrNoMatchingTier.
func NewTable(tiers []PriceTier) (Table, error) {
	for i, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return Table{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("tier[%d]", i), err)
		}
	}

	sorted := append([]PriceTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].minLiter < sorted[j].minLiter
	})

	return Table{tiers: sorted}, nil
}

// Tiers returns the tiers in lookup order.
func (t Table) Tiers() []PriceTier {
	return append([]PriceTier(nil), t.tiers...)
}

// RateFor returns the per-liter price for the given volume.
// Returns ErrNoMatchingTier for negative volume, an empty table, or a
// volume falling into a gap between bands.
func (t Table) RateFor(liters int) (int64, error) {
	if liters < 0 {
		return 0, fmt.Errorf("%w: liters %d is negative", ErrNoMatchingTier, liters)
	}

	for _, tier := range t.tiers {
		if tier.Contains(liters) {
			return tier.pricePerLiter, nil
		}
	}

	return 0, fmt.Errorf("%w: %d liters", ErrNoMatchingTier, liters)
}
