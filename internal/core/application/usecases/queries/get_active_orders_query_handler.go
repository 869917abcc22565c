package queries

import (
	"context"
	"database/sql"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight pickups from the
// database with a single denormalized read.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results exclude Paid orders and are sorted
// oldest first so the longest-waiting pickups surface on top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			status,
			customer_name,
			customer_phone,
			customer_district,
			customer_city,
			estimated_liters,
			actual_liters,
			courier_id,
			created_at
		FROM orders
		WHERE status != ?
	`
	args := []any{order.Paid.String()}

	if query.CourierID() != nil {
		sqlQuery += " AND courier_id = ?"
		args = append(args, query.CourierID().Bytes())
	}
	sqlQuery += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			resp         GetActiveOrdersQueryResponse
			id           uuid.UUID
			actualLiters sql.NullInt64
			courierID    uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.CustomerDistrict,
			&resp.CustomerCity,
			&resp.EstimatedLiters,
			&actualLiters,
			&courierID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if actualLiters.Valid {
			liters := int(actualLiters.Int64)
			resp.ActualLiters = &liters
		}
		if courierID.Valid {
			cid, cidErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cidErr != nil {
				return nil, cidErr
			}
			resp.CourierID = &cid
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
