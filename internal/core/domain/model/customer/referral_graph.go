package customer

import "jelantah/internal/core/domain/model/kernel"

// maxReferralDepth caps referrer traversal. Affiliate attribution is
// single-level, and the cap guarantees termination even if malformed
// upstream data ever contains a referral cycle.
const maxReferralDepth = 1

// ReferralGraph is a read-only adjacency view over a set of customers,
// resolving a customer's direct referrer for affiliate attribution.
// It never walks further than maxReferralDepth, so it terminates on any
// input.
type ReferralGraph struct {
	byID map[kernel.UUID]*Customer
}

// NewReferralGraph builds the adjacency view from a customer set.
// Customers whose referrer is absent from the set simply resolve to no
// referrer.
func NewReferralGraph(customers []*Customer) *ReferralGraph {
	byID := make(map[kernel.UUID]*Customer, len(customers))
	for _, c := range customers {
		if c != nil && c.Validate() == nil {
			byID[c.ID()] = c
		}
	}
	return &ReferralGraph{byID: byID}
}

// Customer resolves a customer by ID.
func (g *ReferralGraph) Customer(id kernel.UUID) (*Customer, bool) {
	c, ok := g.byID[id]
	return c, ok
}

// ReferrerOf resolves the direct referrer of the given customer, or
// (nil, false) when the customer is unknown, has no referrer, or the
// referrer record is absent. The lookup is exactly one hop; deeper
// ancestors are never consulted.
func (g *ReferralGraph) ReferrerOf(customerID kernel.UUID) (*Customer, bool) {
	current, ok := g.byID[customerID]
	if !ok {
		return nil, false
	}

	for depth := 0; depth < maxReferralDepth; depth++ {
		parentID := current.ReferredBy()
		if parentID == nil {
			return nil, false
		}
		parent, found := g.byID[*parentID]
		if !found {
			return nil, false
		}
		current = parent
	}

	return current, true
}
