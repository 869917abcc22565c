// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the aggregates and read denormalized rows with
// raw SQL, so list endpoints never pay aggregate reconstruction costs.
package queries

import (
	"errors"
	"time"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves orders still moving through the pickup
// flow, meaning everything that has not reached Paid. Optionally scoped
// to a single courier's assignments for the courier's worklist view.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d pickups in flight\n", len(orders))
type GetActiveOrdersQuery struct {
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for all active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetActiveOrdersQueryForCourier creates a query scoped to the active
// orders assigned to the given courier.
func NewGetActiveOrdersQueryForCourier(courierID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	return GetActiveOrdersQuery{
		courierID: &courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the courier filter, or nil for the unscoped query.
func (q GetActiveOrdersQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// GetActiveOrdersQueryResponse represents one active pickup with the
// denormalized customer contact details the dispatcher screen shows.
type GetActiveOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	CustomerName     string
	CustomerPhone    string
	CustomerDistrict string
	CustomerCity     string
	EstimatedLiters  int
	ActualLiters     *int
	CourierID        *kernel.UUID
	CreatedAt        time.Time
}
