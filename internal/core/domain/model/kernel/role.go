package kernel

import (
	"fmt"

	"jelantah/internal/pkg/errs"
)

// Role represents the kind of actor interacting with the system.
// Roles are supplied by the external identity provider along with the
// actor's identity; the domain trusts them as given and only decides
// which lifecycle transitions a role may apply.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is the office/back-office role. Admins can create orders,
	// assign couriers, and settle payments.
	RoleAdmin

	// RoleCourier is the field collector role. Couriers claim, start,
	// and complete pickups they are assigned to.
	RoleCourier

	// RoleWarehouse is the intake role. Warehouse staff verify collected
	// volume, which unlocks billing.
	RoleWarehouse

	// RoleCustomer is the pickup-location role. Customers request
	// pickups through the portal.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleAdmin:     "Admin",
		RoleCourier:   "Courier",
		RoleWarehouse: "Warehouse",
		RoleCustomer:  "Customer",
	}
}

// RoleFromString parses a role from its string name.
// Returns an error for unknown names, including "Unknown".
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCourier, RoleWarehouse, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

// Actor is the authenticated identity applying an operation: who they
// are and in what capacity. Actors are constructed at the transport
// boundary from identity-provider claims and passed into the domain.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the capacity the actor is acting in.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks that the actor carries a constructed identity and a
// defined role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
