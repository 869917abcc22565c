package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/domain/model/pricing"
	"jelantah/internal/core/domain/services"
	"jelantah/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// billingReportCacheKey is the single cache entry for the full report.
// Invalidation happens by prefix from the Verify and MarkPaid commands.
const billingReportCacheKey = ports.BillingReportCachePrefix + "all"

// GetBillingReportQueryHandler assembles the payout sheet from billable
// orders. The referrer is resolved with a self join on customers, the
// settlement breakdown comes from the domain calculator, and the
// assembled report is cached in Redis until a command invalidates it.
type GetBillingReportQueryHandler struct {
	db         *gorm.DB
	tiers      ports.PriceTierRepository
	calculator services.SettlementCalculator
	cache      ports.ReportCache
	cacheTTL   time.Duration
}

// NewGetBillingReportQueryHandler creates a handler for billing report queries.
func NewGetBillingReportQueryHandler(
	db *gorm.DB,
	tiers ports.PriceTierRepository,
	calculator services.SettlementCalculator,
	cache ports.ReportCache,
	cacheTTL time.Duration,
) GetBillingReportQueryHandler {
	return GetBillingReportQueryHandler{
		db:         db,
		tiers:      tiers,
		calculator: calculator,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Handle executes the query, serving from cache when possible.
// Cache failures degrade to a database read, never to an error.
func (h GetBillingReportQueryHandler) Handle(
	ctx context.Context,
	query GetBillingReportQuery,
) ([]BillingReportRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok, err := h.cache.Get(ctx, billingReportCacheKey); err != nil {
		slog.WarnContext(ctx, "billing report cache read failed", "error", err)
	} else if ok {
		var report []BillingReportRow
		if err = json.Unmarshal(cached, &report); err == nil {
			return report, nil
		}
		slog.WarnContext(ctx, "billing report cache entry is corrupt", "error", err)
	}

	table, err := h.tiers.GetTable(ctx)
	if err != nil {
		return nil, err
	}

	report, err := h.buildReport(ctx, table)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err = h.cache.Set(ctx, billingReportCacheKey, payload, h.cacheTTL); err != nil {
			slog.WarnContext(ctx, "billing report cache write failed", "error", err)
		}
	}

	return report, nil
}

func (h GetBillingReportQueryHandler) buildReport(ctx context.Context, table pricing.Table) ([]BillingReportRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.actual_liters,
			c.id,
			c.name,
			c.bank_account,
			c.referred_by
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status IN (?, ?)
		ORDER BY o.created_at
	`, order.Verified.String(), order.Paid.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]BillingReportRow, 0)

	for rows.Next() {
		var (
			row          BillingReportRow
			orderID      uuid.UUID
			customerID   uuid.UUID
			actualLiters sql.NullInt64
			referredBy   uuid.NullUUID
			bankAccount  sql.NullString
		)

		err = rows.Scan(
			&orderID,
			&row.Status,
			&actualLiters,
			&customerID,
			&row.CustomerName,
			&bankAccount,
			&referredBy,
		)
		if err != nil {
			return nil, err
		}

		if !actualLiters.Valid {
			// Verified orders always carry a volume; a hole here is data
			// corruption and must not silently price at zero.
			return nil, services.ErrActualLitersMissing
		}

		row.OrderID = orderID.String()
		row.CustomerID = customerID.String()
		row.BankAccount = bankAccount.String
		row.ActualLiters = int(actualLiters.Int64)

		var affiliate *kernel.UUID
		if referredBy.Valid {
			id, idErr := kernel.UUIDFromBytes(referredBy.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			affiliate = &id
		}

		settlement, calcErr := h.calculator.CalculateBreakdown(row.ActualLiters, affiliate, table)
		if calcErr != nil {
			return nil, calcErr
		}

		row.CustomerPayout = settlement.CustomerPayout
		row.CourierFee = settlement.CourierFee
		row.AffiliateFee = settlement.AffiliateFee
		if settlement.AffiliateRecipient != nil {
			row.AffiliateRecipient = settlement.AffiliateRecipient.String()
		}

		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
