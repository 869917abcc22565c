package order_test

import (
	"testing"

	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSnapshot(t *testing.T) order.CustomerSnapshot {
	t.Helper()
	snapshot, err := order.NewCustomerSnapshot("Warung Bu Siti", "081234567890", "Coblong", "Bandung")
	require.NoError(t, err)
	return snapshot
}

func actorWithRole(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validSnapshot(t), 20)
	require.NoError(t, err)
	return o
}

// driveTo advances a fresh pending order to the requested status using a
// single courier actor, returning the order and that courier's actor.
func driveTo(t *testing.T, target order.Status) (*order.Order, kernel.Actor) {
	t.Helper()
	o := pendingOrder(t)
	courier := actorWithRole(t, kernel.RoleCourier)
	admin := actorWithRole(t, kernel.RoleAdmin)

	if target == order.Pending {
		return o, courier
	}
	require.NoError(t, o.Assign(courier, courier.ID()))
	if target == order.Assigned {
		return o, courier
	}
	require.NoError(t, o.Start(courier))
	if target == order.InProgress {
		return o, courier
	}
	require.NoError(t, o.Complete(courier, 22, "evidence/pickup-1.jpg"))
	if target == order.Completed {
		return o, courier
	}
	require.NoError(t, o.Verify(actorWithRole(t, kernel.RoleWarehouse)))
	if target == order.Verified {
		return o, courier
	}
	require.NoError(t, o.MarkPaid(admin, "evidence/payment-1.jpg"))
	return o, courier
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("creates pending order with valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, validSnapshot(t), 20)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, 20, o.EstimatedLiters())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.ActualLiters())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("fails with zero-value order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, customerID, validSnapshot(t), 20)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails with non-constructed snapshot", func(t *testing.T) {
		var snapshot order.CustomerSnapshot

		o, err := order.NewOrder(validID, customerID, snapshot, 20)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "CustomerSnapshot must be created")
	})

	t.Run("fails with non-positive estimated liters", func(t *testing.T) {
		for _, liters := range []int{0, -5} {
			o, err := order.NewOrder(validID, customerID, validSnapshot(t), liters)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "estimatedLiters")
		}
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("admin assigns any courier", func(t *testing.T) {
		o := pendingOrder(t)
		admin := actorWithRole(t, kernel.RoleAdmin)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(admin, courierID))
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("courier self-claims", func(t *testing.T) {
		o := pendingOrder(t)
		courier := actorWithRole(t, kernel.RoleCourier)

		require.NoError(t, o.Assign(courier, courier.ID()))
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("courier cannot assign someone else", func(t *testing.T) {
		o := pendingOrder(t)
		courier := actorWithRole(t, kernel.RoleCourier)

		err := o.Assign(courier, kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrRoleDenied)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects zero-value courier id as payload", func(t *testing.T) {
		o := pendingOrder(t)
		admin := actorWithRole(t, kernel.RoleAdmin)
		var courierID kernel.UUID

		err := o.Assign(admin, courierID)

		require.ErrorIs(t, err, order.ErrPayloadInvalid)
	})

	t.Run("rejects assign from non-pending state", func(t *testing.T) {
		o, _ := driveTo(t, order.Assigned)
		admin := actorWithRole(t, kernel.RoleAdmin)

		err := o.Assign(admin, kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrStateMismatch)
	})
}

func TestOrder_Start(t *testing.T) {
	t.Run("assigned courier starts the pickup", func(t *testing.T) {
		o, courier := driveTo(t, order.Assigned)

		require.NoError(t, o.Start(courier))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("another courier is denied", func(t *testing.T) {
		o, _ := driveTo(t, order.Assigned)
		other := actorWithRole(t, kernel.RoleCourier)

		err := o.Start(other)

		require.ErrorIs(t, err, order.ErrRoleDenied)
	})

	t.Run("admin is denied", func(t *testing.T) {
		o, _ := driveTo(t, order.Assigned)

		err := o.Start(actorWithRole(t, kernel.RoleAdmin))

		require.ErrorIs(t, err, order.ErrRoleDenied)
	})

	t.Run("pending order cannot be started", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.Start(actorWithRole(t, kernel.RoleCourier))

		require.ErrorIs(t, err, order.ErrStateMismatch)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("assigned courier completes with liters and evidence", func(t *testing.T) {
		o, courier := driveTo(t, order.InProgress)

		require.NoError(t, o.Complete(courier, 22, "evidence/pickup-7.jpg"))
		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.ActualLiters())
		assert.Equal(t, 22, *o.ActualLiters())
		assert.Equal(t, "evidence/pickup-7.jpg", o.PickupPhotoRef())
	})

	t.Run("rejects non-positive actual liters", func(t *testing.T) {
		o, courier := driveTo(t, order.InProgress)

		err := o.Complete(courier, 0, "evidence/pickup-7.jpg")

		require.ErrorIs(t, err, order.ErrPayloadInvalid)
		assert.Equal(t, order.InProgress, o.Status())
		assert.Nil(t, o.ActualLiters())
	})

	t.Run("rejects missing pickup evidence", func(t *testing.T) {
		o, courier := driveTo(t, order.InProgress)

		err := o.Complete(courier, 22, "")

		require.ErrorIs(t, err, order.ErrPayloadInvalid)
	})

	t.Run("another courier is denied", func(t *testing.T) {
		o, _ := driveTo(t, order.InProgress)
		other := actorWithRole(t, kernel.RoleCourier)

		err := o.Complete(other, 22, "evidence/pickup-7.jpg")

		require.ErrorIs(t, err, order.ErrRoleDenied)
	})
}

func TestOrder_Verify(t *testing.T) {
	t.Run("warehouse verifies a completed order", func(t *testing.T) {
		o, _ := driveTo(t, order.Completed)

		require.NoError(t, o.Verify(actorWithRole(t, kernel.RoleWarehouse)))
		assert.Equal(t, order.Verified, o.Status())
	})

	t.Run("admin verifies a completed order", func(t *testing.T) {
		o, _ := driveTo(t, order.Completed)

		require.NoError(t, o.Verify(actorWithRole(t, kernel.RoleAdmin)))
		assert.Equal(t, order.Verified, o.Status())
	})

	t.Run("courier is denied", func(t *testing.T) {
		o, courier := driveTo(t, order.Completed)

		err := o.Verify(courier)

		require.ErrorIs(t, err, order.ErrRoleDenied)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("admin settles a verified order", func(t *testing.T) {
		o, _ := driveTo(t, order.Verified)

		require.NoError(t, o.MarkPaid(actorWithRole(t, kernel.RoleAdmin), "evidence/payment-9.jpg"))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "evidence/payment-9.jpg", o.PaymentProofRef())
	})

	t.Run("skipping verification is a state mismatch", func(t *testing.T) {
		o, _ := driveTo(t, order.Completed)

		err := o.MarkPaid(actorWithRole(t, kernel.RoleAdmin), "evidence/payment-9.jpg")

		require.ErrorIs(t, err, order.ErrStateMismatch)

		var rejected *order.TransitionRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, order.ReasonStateMismatch, rejected.Reason)
		assert.True(t, rejected.Retryable())
	})

	t.Run("warehouse is denied", func(t *testing.T) {
		o, _ := driveTo(t, order.Verified)

		err := o.MarkPaid(actorWithRole(t, kernel.RoleWarehouse), "evidence/payment-9.jpg")

		require.ErrorIs(t, err, order.ErrRoleDenied)
	})

	t.Run("rejects missing payment evidence", func(t *testing.T) {
		o, _ := driveTo(t, order.Verified)

		err := o.MarkPaid(actorWithRole(t, kernel.RoleAdmin), "")

		require.ErrorIs(t, err, order.ErrPayloadInvalid)
	})
}

// TestOrder_LifecycleChain verifies that no sequence of valid
// transitions reaches Paid without passing through every prior state
// in order.
func TestOrder_LifecycleChain(t *testing.T) {
	o := pendingOrder(t)
	courier := actorWithRole(t, kernel.RoleCourier)
	admin := actorWithRole(t, kernel.RoleAdmin)
	warehouse := actorWithRole(t, kernel.RoleWarehouse)

	seen := []order.Status{o.Status()}

	require.NoError(t, o.Assign(courier, courier.ID()))
	seen = append(seen, o.Status())
	require.NoError(t, o.Start(courier))
	seen = append(seen, o.Status())
	require.NoError(t, o.Complete(courier, 22, "evidence/pickup.jpg"))
	seen = append(seen, o.Status())
	require.NoError(t, o.Verify(warehouse))
	seen = append(seen, o.Status())
	require.NoError(t, o.MarkPaid(admin, "evidence/payment.jpg"))
	seen = append(seen, o.Status())

	assert.Equal(t, []order.Status{
		order.Pending, order.Assigned, order.InProgress,
		order.Completed, order.Verified, order.Paid,
	}, seen)

	// Terminal: nothing applies to a Paid order.
	require.ErrorIs(t, o.Verify(warehouse), order.ErrStateMismatch)
	require.ErrorIs(t, o.MarkPaid(admin, "evidence/payment.jpg"), order.ErrStateMismatch)
}

func TestOrder_Apply(t *testing.T) {
	t.Run("dispatches assign with payload", func(t *testing.T) {
		o := pendingOrder(t)
		admin := actorWithRole(t, kernel.RoleAdmin)
		courierID := kernel.NewUUID()

		err := o.Apply(admin, order.TransitionAssign, order.TransitionPayload{CourierID: &courierID})

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("missing payload field is PayloadInvalid", func(t *testing.T) {
		o := pendingOrder(t)
		admin := actorWithRole(t, kernel.RoleAdmin)

		err := o.Apply(admin, order.TransitionAssign, order.TransitionPayload{})

		require.ErrorIs(t, err, order.ErrPayloadInvalid)
	})

	t.Run("dispatches complete with payload", func(t *testing.T) {
		o, courier := driveTo(t, order.InProgress)
		liters := 22
		photoRef := "evidence/pickup.jpg"

		err := o.Apply(courier, order.TransitionComplete, order.TransitionPayload{
			ActualLiters:   &liters,
			PickupPhotoRef: &photoRef,
		})

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("unknown transition is invalid", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.Apply(actorWithRole(t, kernel.RoleAdmin), order.TransitionUnknown, order.TransitionPayload{})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores a completed order", func(t *testing.T) {
		source, _ := driveTo(t, order.Completed)

		restored, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Customer(), source.EstimatedLiters(),
			source.ActualLiters(), source.Status(), source.Courier(), source.CreatedAt(),
			source.PickupPhotoRef(), source.PaymentProofRef(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(source))
		assert.Equal(t, order.Completed, restored.Status())
		require.NotNil(t, restored.ActualLiters())
		assert.Equal(t, 22, *restored.ActualLiters())
	})

	t.Run("rejects completed order without actual liters", func(t *testing.T) {
		source, _ := driveTo(t, order.Completed)

		_, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Customer(), source.EstimatedLiters(),
			nil, source.Status(), source.Courier(), source.CreatedAt(),
			source.PickupPhotoRef(), "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actual liters")
	})

	t.Run("rejects assigned order without courier", func(t *testing.T) {
		source, _ := driveTo(t, order.Assigned)

		_, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Customer(), source.EstimatedLiters(),
			nil, source.Status(), nil, source.CreatedAt(), "", "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "courier")
	})

	t.Run("rejects pending order with courier", func(t *testing.T) {
		source := pendingOrder(t)
		courierID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			source.ID(), source.CustomerID(), source.Customer(), source.EstimatedLiters(),
			nil, order.Pending, &courierID, source.CreatedAt(), "", "",
		)

		require.Error(t, err)
	})
}
