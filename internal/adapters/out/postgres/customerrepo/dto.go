// Package customerrepo provides data transfer objects and mapping
// functions for customer persistence, including the referral relation
// stored as a self reference on the customers table.
package customerrepo

import (
	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. ReferredBy is a nullable self reference; the downline is
// derived from other rows pointing back, never stored.
type CustomerDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string     `gorm:"not null"`
	Phone         string     `gorm:"not null"`
	Address       string     `gorm:"not null"`
	District      string     `gorm:"not null"`
	City          string     `gorm:"not null"`
	ShareLocation string
	BankAccount   string
	TotalLiters   int        `gorm:"not null;default:0"`
	ReferredBy    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	var referredBy *uuid.UUID
	if id := aggregate.ReferredBy(); id != nil {
		raw := id.Bytes()
		referredBy = &raw
	}

	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone(),
		Address:       aggregate.Address(),
		District:      aggregate.District(),
		City:          aggregate.City(),
		ShareLocation: aggregate.ShareLocation(),
		BankAccount:   aggregate.BankAccount(),
		TotalLiters:   aggregate.TotalLiters(),
		ReferredBy:    referredBy,
	}
}

// toDomain converts a database DTO and the derived downline identifiers
// to a customer domain aggregate.
func toDomain(dto CustomerDTO, downline []kernel.UUID) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var referredBy *kernel.UUID
	if dto.ReferredBy != nil {
		refID, refErr := kernel.UUIDFromBytes((*dto.ReferredBy)[:])
		if refErr != nil {
			return nil, refErr
		}
		referredBy = &refID
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Phone,
		dto.Address,
		dto.District,
		dto.City,
		dto.ShareLocation,
		dto.BankAccount,
		dto.TotalLiters,
		referredBy,
		downline,
	)
}
