package order

import "jelantah/internal/core/domain/model/kernel"

// transitionRoles is the authorization table mapping (transition, role)
// to permitted/denied. The table is total: every transition lists every
// role explicitly, so there is no implicit default-allow and totality is
// checkable by the test suite.
//
// Courier entries grant role eligibility only; courier-gated transitions
// additionally require identity equality with the order's assigned
// courier (ownership), which the aggregate enforces.
func transitionRoles() map[Transition]map[kernel.Role]bool {
	return map[Transition]map[kernel.Role]bool{
		TransitionAssign: {
			kernel.RoleAdmin:     true,
			kernel.RoleCourier:   true, // self-claim only
			kernel.RoleWarehouse: false,
			kernel.RoleCustomer:  false,
		},
		TransitionStart: {
			kernel.RoleAdmin:     false,
			kernel.RoleCourier:   true, // assigned courier only
			kernel.RoleWarehouse: false,
			kernel.RoleCustomer:  false,
		},
		TransitionComplete: {
			kernel.RoleAdmin:     false,
			kernel.RoleCourier:   true, // assigned courier only
			kernel.RoleWarehouse: false,
			kernel.RoleCustomer:  false,
		},
		TransitionVerify: {
			kernel.RoleAdmin:     true,
			kernel.RoleCourier:   false,
			kernel.RoleWarehouse: true,
			kernel.RoleCustomer:  false,
		},
		TransitionMarkPaid: {
			kernel.RoleAdmin:     true,
			kernel.RoleCourier:   false,
			kernel.RoleWarehouse: false,
			kernel.RoleCustomer:  false,
		},
	}
}

// RoleAllowed reports whether the given role is eligible to apply the
// given transition. Ownership checks for courier-gated transitions are
// separate and enforced by the Order aggregate.
func RoleAllowed(role kernel.Role, transition Transition) bool {
	roles, ok := transitionRoles()[transition]
	if !ok {
		return false
	}
	return roles[role]
}
