package order_test

import (
	"errors"
	"testing"

	"jelantah/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionFromString(t *testing.T) {
	t.Run("round-trips with String", func(t *testing.T) {
		for _, transition := range allTransitions {
			parsed, err := order.TransitionFromString(transition.String())
			require.NoError(t, err)
			assert.Equal(t, transition, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.TransitionFromString("Cancel")
		require.Error(t, err)
	})
}

func TestTransitionRejectedError(t *testing.T) {
	t.Run("unwraps to the sentinel matching its reason", func(t *testing.T) {
		cause := errors.New("boom")

		require.ErrorIs(t, order.NewStateMismatchError(order.TransitionVerify, cause), order.ErrStateMismatch)
		require.ErrorIs(t, order.NewRoleDeniedError(order.TransitionVerify, cause), order.ErrRoleDenied)
		require.ErrorIs(t, order.NewPayloadInvalidError(order.TransitionVerify, cause), order.ErrPayloadInvalid)
	})

	t.Run("only state mismatch is retryable", func(t *testing.T) {
		cause := errors.New("boom")

		assert.True(t, order.NewStateMismatchError(order.TransitionAssign, cause).Retryable())
		assert.False(t, order.NewRoleDeniedError(order.TransitionAssign, cause).Retryable())
		assert.False(t, order.NewPayloadInvalidError(order.TransitionAssign, cause).Retryable())
	})

	t.Run("message names the transition and reason", func(t *testing.T) {
		err := order.NewStateMismatchError(order.TransitionMarkPaid, errors.New("Completed is not Verified"))

		assert.Contains(t, err.Error(), "MarkPaid")
		assert.Contains(t, err.Error(), "StateMismatch")
		assert.Contains(t, err.Error(), "Completed is not Verified")
	})
}
