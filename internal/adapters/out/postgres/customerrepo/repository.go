package customerrepo

import (
	"context"
	"errors"

	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID, with the downline derived from rows
// referring back to it.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	downline, err := r.downlineOf(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, downline)
}

// GetWithReferrer retrieves a customer together with its direct referrer.
// The referrer is nil for customers without one; a dangling reference is
// reported as a not-found error rather than silently dropped.
func (r *GormCustomerRepository) GetWithReferrer(ctx context.Context, id kernel.UUID) (*customer.Customer, *customer.Customer, error) {
	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	referredBy := aggregate.ReferredBy()
	if referredBy == nil {
		return aggregate, nil, nil
	}

	referrer, err := r.Get(ctx, *referredBy)
	if err != nil {
		return nil, nil, err
	}

	return aggregate, referrer, nil
}

func (r *GormCustomerRepository) downlineOf(ctx context.Context, id uuid.UUID) ([]kernel.UUID, error) {
	var refIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("referred_by = ?", id).
		Order("id").
		Pluck("id", &refIDs).Error
	if err != nil {
		return nil, err
	}

	downline := make([]kernel.UUID, 0, len(refIDs))
	for _, refID := range refIDs {
		memberID, idErr := kernel.UUIDFromBytes(refID[:])
		if idErr != nil {
			return nil, idErr
		}
		downline = append(downline, memberID)
	}

	return downline, nil
}
