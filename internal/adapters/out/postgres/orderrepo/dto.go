// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates, indexed for the active-orders and billing queries.
// The customer snapshot is embedded so order history survives later
// customer profile edits.
type OrderDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID           `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID          `gorm:"type:uuid;index"`
	Customer        CustomerSnapshotDTO `gorm:"embedded;embeddedPrefix:customer_"`
	EstimatedLiters int
	ActualLiters    *int
	Status          string `gorm:"type:varchar(16);index"`
	PickupPhotoRef  string
	PaymentProofRef string
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerSnapshotDTO represents the embedded customer contact details
// frozen into the order at creation time.
type CustomerSnapshotDTO struct {
	Name     string
	Phone    string
	District string
	City     string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var actualLiters *int
	if liters := aggregate.ActualLiters(); liters != nil {
		value := *liters
		actualLiters = &value
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		CourierID:  courierID,
		Customer: CustomerSnapshotDTO{
			Name:     aggregate.Customer().Name(),
			Phone:    aggregate.Customer().Phone(),
			District: aggregate.Customer().District(),
			City:     aggregate.Customer().City(),
		},
		EstimatedLiters: aggregate.EstimatedLiters(),
		ActualLiters:    actualLiters,
		Status:          aggregate.Status().String(),
		PickupPhotoRef:  aggregate.PickupPhotoRef(),
		PaymentProofRef: aggregate.PaymentProofRef(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder so the
// cross-field invariants are re-checked on the way out of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	snapshot, err := order.NewCustomerSnapshot(
		dto.Customer.Name,
		dto.Customer.Phone,
		dto.Customer.District,
		dto.Customer.City,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		snapshot,
		dto.EstimatedLiters,
		dto.ActualLiters,
		status,
		courierID,
		dto.CreatedAt,
		dto.PickupPhotoRef,
		dto.PaymentProofRef,
	)
}
