package order_test

import (
	"testing"

	"caisse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all declared statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Ready, order.Paid} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			require.Error(t, s.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "preparing", order.Preparing.String())
	assert.Equal(t, "ready", order.Ready.String())
	assert.Equal(t, "paid", order.Paid.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Pay(t *testing.T) {
	t.Run("pending becomes paid", func(t *testing.T) {
		s, err := order.Pending.Pay()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, s)
	})

	t.Run("paying twice is rejected", func(t *testing.T) {
		_, err := order.Paid.Pay()

		require.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	})

	t.Run("other statuses cannot be paid", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Preparing, order.Ready} {
			_, err := s.Pay()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to pay")
		}
	})
}

func TestStatus_ValidateCanHavePaidAt(t *testing.T) {
	t.Run("only paid orders carry a payment timestamp", func(t *testing.T) {
		require.NoError(t, order.Paid.ValidateCanHavePaidAt(true))
		require.Error(t, order.Paid.ValidateCanHavePaidAt(false))
	})

	t.Run("unpaid orders must not carry one", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Ready} {
			require.NoError(t, s.ValidateCanHavePaidAt(false))
			require.Error(t, s.ValidateCanHavePaidAt(true))
		}
	})
}
