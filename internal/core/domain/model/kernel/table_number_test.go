package kernel_test

import (
	"testing"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableNumber(t *testing.T) {
	t.Run("should accept numbers starting at 1", func(t *testing.T) {
		n, err := kernel.NewTableNumber(4)

		require.NoError(t, err)
		assert.Equal(t, 4, n.Int())
		assert.Equal(t, "4", n.String())
	})

	t.Run("should reject zero and negative numbers", func(t *testing.T) {
		for _, number := range []int{0, -3} {
			_, err := kernel.NewTableNumber(number)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestTableNumber_ID(t *testing.T) {
	t.Run("should derive the identifier deterministically", func(t *testing.T) {
		n, _ := kernel.NewTableNumber(7)

		assert.Equal(t, "TABLE-7", n.ID())
	})
}
