package kernel_test

import (
	"testing"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVatRate(t *testing.T) {
	t.Run("should accept every enumerated rate", func(t *testing.T) {
		for _, percent := range []int{0, 6, 7, 12, 18, 21} {
			rate, err := kernel.NewVatRate(percent)

			require.NoError(t, err)
			assert.Equal(t, percent, rate.Percent())
		}
	})

	t.Run("should reject rates outside the enumerated set", func(t *testing.T) {
		for _, percent := range []int{-1, 5, 19, 100} {
			_, err := kernel.NewVatRate(percent)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestVatRate_AmountOn(t *testing.T) {
	t.Run("should compute exact bucket amounts", func(t *testing.T) {
		// 3.500 x 2 at 7% -> 0.490
		base, _ := kernel.NewMoneyFromMillimes(7000)
		rate, _ := kernel.NewVatRate(7)

		assert.Equal(t, int64(490), rate.AmountOn(base).Millimes())
	})

	t.Run("should round half up to the nearest millime", func(t *testing.T) {
		// 0.105 at 6% = 0.0063 -> 0.006
		base, _ := kernel.NewMoneyFromMillimes(105)
		rate, _ := kernel.NewVatRate(6)
		assert.Equal(t, int64(6), rate.AmountOn(base).Millimes())

		// 0.125 at 6% = 0.0075 -> 0.008
		base, _ = kernel.NewMoneyFromMillimes(125)
		assert.Equal(t, int64(8), rate.AmountOn(base).Millimes())
	})

	t.Run("should return zero for the exempt rate", func(t *testing.T) {
		base, _ := kernel.NewMoneyFromMillimes(99999)

		assert.True(t, kernel.VatRateExempt.AmountOn(base).IsZero())
	})
}

func TestVatRate_String(t *testing.T) {
	rate, _ := kernel.NewVatRate(18)

	assert.Equal(t, "18%", rate.String())
}

func TestAllVatRates(t *testing.T) {
	rates := kernel.AllVatRates()

	require.Len(t, rates, 6)
	for _, rate := range rates {
		require.NoError(t, rate.Validate())
	}
}
