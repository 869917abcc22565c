package order

import (
	"errors"

	"jelantah/internal/pkg/errs"
	"jelantah/internal/pkg/guard"
)

// ErrCustomerSnapshotIsNotConstructed is returned when using an improperly
// initialized CustomerSnapshot.
var ErrCustomerSnapshotIsNotConstructed = errors.New(
	"CustomerSnapshot must be created via NewCustomerSnapshot constructor")

// CustomerSnapshot is the denormalized contact and location data captured
// on the order at creation time. It is deliberately a copy: later edits
// to the customer record do not re-sync into existing orders, so the
// order remains a faithful record of where and for whom the pickup was
// requested.
//
// CustomerSnapshot is an immutable value object; the zero value is
// invalid and fails validation.
type CustomerSnapshot struct { //nolint:recvcheck //using for validation
	name     string
	phone    string
	district string
	city     string

	guard guard.ConstructorGuard
}

// NewCustomerSnapshot creates a snapshot with all four fields required.
func NewCustomerSnapshot(name, phone, district, city string) (CustomerSnapshot, error) {
	snapshot := CustomerSnapshot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		snapshot.setName(name),
		snapshot.setPhone(phone),
		snapshot.setDistrict(district),
		snapshot.setCity(city),
	); err != nil {
		return CustomerSnapshot{}, err
	}

	return snapshot, nil
}

// Validate checks the snapshot was created through the constructor.
func (s CustomerSnapshot) Validate() error {
	return s.guard.Validate(ErrCustomerSnapshotIsNotConstructed)
}

// Name returns the customer name captured at order creation.
func (s CustomerSnapshot) Name() string {
	return s.name
}

// Phone returns the customer phone captured at order creation.
func (s CustomerSnapshot) Phone() string {
	return s.phone
}

// District returns the customer district (kecamatan) captured at order creation.
func (s CustomerSnapshot) District() string {
	return s.district
}

// City returns the customer city (kota) captured at order creation.
func (s CustomerSnapshot) City() string {
	return s.city
}

func (s *CustomerSnapshot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	s.name = name
	return nil
}

func (s *CustomerSnapshot) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	s.phone = phone
	return nil
}

func (s *CustomerSnapshot) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("customerDistrict")
	}
	s.district = district
	return nil
}

func (s *CustomerSnapshot) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("customerCity")
	}
	s.city = city
	return nil
}
