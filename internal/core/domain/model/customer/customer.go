package customer

import (
	"errors"
	"fmt"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/pkg/errs"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrSelfReferral is returned when a customer is linked as their own referrer.
	ErrSelfReferral = errors.New("customer cannot refer themselves")
	// ErrReferralCycle is returned when establishing a referral link would
	// close a cycle between two customers.
	ErrReferralCycle = errors.New("referral link would create a cycle")
	// ErrReferrerAlreadySet is returned when a customer already has a referrer.
	ErrReferrerAlreadySet = errors.New("customer already has a referrer")
)

// Customer represents a pickup location/account. It is an aggregate root
// holding contact data, the bank settlement account, the cumulative
// collected volume, and the referral relation.
//
// Business rules:
//   - A customer has at most one referrer (the relation is a forest)
//   - Cumulative liters only ever grow, credited when orders are verified
//   - Customers are never deleted
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the business or household name of the pickup location
	name string
	// phone is the contact number
	phone string
	// address is the street address
	address string
	// district is the kecamatan
	district string
	// city is the kota
	city string
	// shareLocation is a shareable map link to the pickup point
	shareLocation string
	// bankAccount is the settlement account payouts are sent to
	bankAccount string
	// totalLiters is the cumulative verified volume, monotonically non-decreasing
	totalLiters int
	// referredBy is the single direct referrer (nil if none)
	referredBy *kernel.UUID
	// downline holds the customers this customer referred
	downline []kernel.UUID
	// isConstructed ensures the customer was created via a constructor
	isConstructed bool
}

// NewCustomer creates a customer at registration. Name, phone, address,
// district, and city are required; the map link and bank account may be
// filled in later through profile edits.
func NewCustomer(id kernel.UUID, name, phone, address, district, city string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
		c.setDistrict(district),
		c.setCity(city),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence with full state.
func RestoreCustomer(
	id kernel.UUID,
	name, phone, address, district, city, shareLocation, bankAccount string,
	totalLiters int,
	referredBy *kernel.UUID,
	downline []kernel.UUID,
) (*Customer, error) {
	c, err := NewCustomer(id, name, phone, address, district, city)
	if err != nil {
		return nil, err
	}

	if totalLiters < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalLiters",
			fmt.Errorf("%d is negative", totalLiters))
	}

	c.shareLocation = shareLocation
	c.bankAccount = bankAccount
	c.totalLiters = totalLiters

	if referredBy != nil {
		if err = referredBy.Validate(); err != nil {
			return nil, err
		}
		if referredBy.IsEqual(id) {
			return nil, ErrSelfReferral
		}
		rID := *referredBy
		c.referredBy = &rID
	}

	c.downline = append([]kernel.UUID(nil), downline...)
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the contact number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the street address.
func (c *Customer) Address() string {
	return c.address
}

// District returns the kecamatan.
func (c *Customer) District() string {
	return c.district
}

// City returns the kota.
func (c *Customer) City() string {
	return c.city
}

// ShareLocation returns the shareable map link, empty if not set.
func (c *Customer) ShareLocation() string {
	return c.shareLocation
}

// BankAccount returns the settlement account, empty if not set.
func (c *Customer) BankAccount() string {
	return c.bankAccount
}

// TotalLiters returns the cumulative verified volume.
func (c *Customer) TotalLiters() int {
	return c.totalLiters
}

// ReferredBy returns the direct referrer's ID, or nil if the customer
// was not referred.
func (c *Customer) ReferredBy() *kernel.UUID {
	return c.referredBy
}

// Downline returns the customers this customer referred.
func (c *Customer) Downline() []kernel.UUID {
	return append([]kernel.UUID(nil), c.downline...)
}

// UpdateProfile applies a profile edit. Required fields stay required;
// the map link and bank account may be set or cleared.
func (c *Customer) UpdateProfile(name, phone, address, district, city, shareLocation, bankAccount string) error {
	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
		c.setDistrict(district),
		c.setCity(city),
	); err != nil {
		return err
	}
	c.shareLocation = shareLocation
	c.bankAccount = bankAccount
	return nil
}

// AddCollectedLiters credits verified volume to the cumulative total.
// The credit must be positive; the total never decreases.
func (c *Customer) AddCollectedLiters(liters int) error {
	if liters <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("liters",
			fmt.Errorf("%d is not greater than 0", liters))
	}
	c.totalLiters += liters
	return nil
}

// Snapshot captures the denormalized contact/location fields for a new
// order. The copy is intentional: later profile edits do not re-sync
// into existing orders.
func (c *Customer) Snapshot() (order.CustomerSnapshot, error) {
	return order.NewCustomerSnapshot(c.name, c.phone, c.district, c.city)
}

// LinkReferral establishes referee's single referral link to referrer
// and records referee in the referrer's downline. Self-referral, an
// existing referrer, and direct cycles are rejected; deeper cycles
// cannot arise because a customer's referrer is set at most once.
func LinkReferral(referrer, referee *Customer) error {
	if err := referrer.Validate(); err != nil {
		return err
	}
	if err := referee.Validate(); err != nil {
		return err
	}

	if referrer.IsEqual(referee) {
		return ErrSelfReferral
	}
	if referee.referredBy != nil {
		return ErrReferrerAlreadySet
	}
	if referrer.referredBy != nil && referrer.referredBy.IsEqual(referee.id) {
		return ErrReferralCycle
	}

	rID := referrer.id
	referee.referredBy = &rID
	referrer.downline = append(referrer.downline, referee.id)
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Customer) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	c.district = district
	return nil
}

func (c *Customer) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}
