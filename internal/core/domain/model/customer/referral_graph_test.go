package customer_test

import (
	"testing"

	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainABC builds A ← B ← C (A refers B, B refers C).
func chainABC(t *testing.T) (a, b, c *customer.Customer) {
	t.Helper()
	a = newTestCustomer(t, "A")
	b = newTestCustomer(t, "B")
	c = newTestCustomer(t, "C")
	require.NoError(t, customer.LinkReferral(a, b))
	require.NoError(t, customer.LinkReferral(b, c))
	return a, b, c
}

func TestReferralGraph_ReferrerOf(t *testing.T) {
	t.Run("resolves the direct referrer only", func(t *testing.T) {
		a, b, c := chainABC(t)
		graph := customer.NewReferralGraph([]*customer.Customer{a, b, c})

		referrer, ok := graph.ReferrerOf(c.ID())

		require.True(t, ok)
		assert.True(t, referrer.IsEqual(b), "attribution is single-level: B, never A")
	})

	t.Run("no referrer resolves to nothing", func(t *testing.T) {
		a, b, c := chainABC(t)
		graph := customer.NewReferralGraph([]*customer.Customer{a, b, c})

		_, ok := graph.ReferrerOf(a.ID())

		assert.False(t, ok)
	})

	t.Run("unknown customer resolves to nothing", func(t *testing.T) {
		graph := customer.NewReferralGraph(nil)

		_, ok := graph.ReferrerOf(kernel.NewUUID())

		assert.False(t, ok)
	})

	t.Run("absent referrer record resolves to nothing", func(t *testing.T) {
		a, b, c := chainABC(t)
		_ = a
		graph := customer.NewReferralGraph([]*customer.Customer{c, b})

		// b's referrer a is not in the graph
		_, ok := graph.ReferrerOf(b.ID())

		assert.False(t, ok)
	})

	t.Run("terminates on malformed cyclic data", func(t *testing.T) {
		// Restore two customers that reference each other, bypassing the
		// LinkReferral cycle check the way corrupted upstream data would.
		idA := kernel.NewUUID()
		idB := kernel.NewUUID()
		a, err := customer.RestoreCustomer(idA, "A", "0812", "Jl. X", "Coblong", "Bandung", "", "", 0, &idB, nil)
		require.NoError(t, err)
		b, err := customer.RestoreCustomer(idB, "B", "0813", "Jl. Y", "Andir", "Bandung", "", "", 0, &idA, nil)
		require.NoError(t, err)

		graph := customer.NewReferralGraph([]*customer.Customer{a, b})

		referrer, ok := graph.ReferrerOf(idA)

		require.True(t, ok)
		assert.True(t, referrer.IsEqual(b))
	})
}

func TestReferralGraph_Customer(t *testing.T) {
	a := newTestCustomer(t, "A")
	graph := customer.NewReferralGraph([]*customer.Customer{a, nil})

	got, ok := graph.Customer(a.ID())
	require.True(t, ok)
	assert.True(t, got.IsEqual(a))

	_, ok = graph.Customer(kernel.NewUUID())
	assert.False(t, ok)
}
