package services

import (
	"errors"
	"fmt"

	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/domain/model/pricing"
)

// Errors for settlement calculation.
var (
	// ErrOrderNotSettleable is returned when the order has not reached a
	// state where the collected volume is known.
	ErrOrderNotSettleable = errors.New("order has not been completed, nothing to settle")

	// ErrActualLitersMissing is returned when a completed order carries no
	// recorded volume. This is a broken aggregate invariant, not a pricing
	// gap, and must never be retried.
	ErrActualLitersMissing = errors.New("completed order has no recorded actual liters")
)

// FeePolicy carries the per-liter operational fees applied on top of the
// customer payout. The rates are passed in explicitly so the calculator
// stays deterministic and free of ambient configuration.
type FeePolicy struct {
	CourierFeePerLiter   int64
	AffiliateFeePerLiter int64
}

// Validate checks the policy rates are usable.
func (p FeePolicy) Validate() error {
	if p.CourierFeePerLiter < 0 {
		return fmt.Errorf("courier fee per liter %d is negative", p.CourierFeePerLiter)
	}
	if p.AffiliateFeePerLiter < 0 {
		return fmt.Errorf("affiliate fee per liter %d is negative", p.AffiliateFeePerLiter)
	}
	return nil
}

// Settlement is the monetary outcome of a single verified pickup, in
// rupiah. AffiliateRecipient is nil when the customer has no direct
// referrer; AffiliateFee is zero in that case.
type Settlement struct {
	CustomerPayout     int64
	CourierFee         int64
	AffiliateFee       int64
	AffiliateRecipient *kernel.UUID
}

// SettlementCalculator is a domain service computing the payout and fee
// breakdown for an order whose volume has been collected.
//
// The calculation is a pure function of its inputs: the same order,
// pricing table, referral graph and fee policy always produce the same
// Settlement, and nothing is mutated. Callers may recompute freely; the
// result is not stored on the order.
//
// Attribution is single-level: only the customer's direct referrer earns
// the affiliate fee, regardless of how deep the referral chain goes.
type SettlementCalculator struct {
	policy FeePolicy
}

// NewSettlementCalculator creates a calculator with the given fee policy.
func NewSettlementCalculator(policy FeePolicy) (SettlementCalculator, error) {
	if err := policy.Validate(); err != nil {
		return SettlementCalculator{}, err
	}
	return SettlementCalculator{policy: policy}, nil
}

// Calculate computes the settlement for the given order.
//
// The order must be valid and at least Completed. The per-liter rate for
// the customer payout comes from the pricing table keyed by the actual
// collected volume; a volume no tier covers surfaces as
// pricing.ErrNoMatchingTier.
func (c SettlementCalculator) Calculate(
	o *order.Order,
	table pricing.Table,
	graph *customer.ReferralGraph,
) (Settlement, error) {
	if err := o.Validate(); err != nil {
		return Settlement{}, err
	}

	if o.Status() < order.Completed {
		return Settlement{}, fmt.Errorf("%w: order %s is %s",
			ErrOrderNotSettleable, o.ID(), o.Status())
	}

	actual := o.ActualLiters()
	if actual == nil {
		return Settlement{}, fmt.Errorf("%w: order %s", ErrActualLitersMissing, o.ID())
	}

	var affiliate *kernel.UUID
	if graph != nil {
		if referrer, ok := graph.ReferrerOf(o.CustomerID()); ok {
			id := referrer.ID()
			affiliate = &id
		}
	}

	return c.CalculateBreakdown(*actual, affiliate, table)
}

// CalculateBreakdown prices a raw collected volume with an already
// resolved affiliate recipient. Read models that join the referrer in
// SQL use this directly; Calculate delegates here after resolving the
// recipient through the referral graph.
func (c SettlementCalculator) CalculateBreakdown(
	liters int,
	affiliate *kernel.UUID,
	table pricing.Table,
) (Settlement, error) {
	rate, err := table.RateFor(liters)
	if err != nil {
		return Settlement{}, err
	}

	settlement := Settlement{
		CustomerPayout: int64(liters) * rate,
		CourierFee:     int64(liters) * c.policy.CourierFeePerLiter,
	}

	if affiliate != nil {
		recipient := *affiliate
		settlement.AffiliateRecipient = &recipient
		settlement.AffiliateFee = int64(liters) * c.policy.AffiliateFeePerLiter
	}

	return settlement, nil
}
