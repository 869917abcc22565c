package queries

import (
	"errors"

	"jelantah/internal/pkg/guard"
)

var ErrGetBillingReportQueryIsNotConstructed = errors.New(
	"GetBillingReportQuery must be created via NewGetBillingReportQuery constructor",
)

// GetBillingReportQuery produces the payout sheet for the office: every
// Verified or Paid order with its settlement breakdown. Verification is
// the billing gate, so Completed orders with a recorded volume are not
// yet billable and never appear here.
type GetBillingReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBillingReportQuery creates a query for the billing report.
func NewGetBillingReportQuery() GetBillingReportQuery {
	return GetBillingReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBillingReportQuery) Validate() error {
	return q.guard.Validate(ErrGetBillingReportQueryIsNotConstructed)
}

// BillingReportRow is one settled or settleable pickup with its payout
// breakdown. Identifiers are plain strings so rows serialize for the
// report cache and the export webhook without extra mapping.
type BillingReportRow struct {
	OrderID            string `json:"order_id"`
	Status             string `json:"status"`
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name"`
	BankAccount        string `json:"bank_account"`
	ActualLiters       int    `json:"actual_liters"`
	CustomerPayout     int64  `json:"customer_payout"`
	CourierFee         int64  `json:"courier_fee"`
	AffiliateFee       int64  `json:"affiliate_fee"`
	AffiliateRecipient string `json:"affiliate_recipient,omitempty"`
}
