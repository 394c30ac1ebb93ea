package cart_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"caisse/internal/core/domain/model/cart"
	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, id string, millimes int64, percent int) product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromMillimes(millimes)
	require.NoError(t, err)
	rate, err := kernel.NewVatRate(percent)
	require.NoError(t, err)
	p, err := product.NewProduct(id, "Product "+id, price, "chaud", rate, "")
	require.NoError(t, err)
	return p
}

func TestCart_Add(t *testing.T) {
	t.Run("should append new line with quantity 1", func(t *testing.T) {
		c := cart.NewCart()
		p := makeProduct(t, "1", 3500, 7)

		require.NoError(t, c.Add(p))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity())
		assert.True(t, lines[0].Product().IsEqual(p))
	})

	t.Run("should increment quantity for existing product", func(t *testing.T) {
		c := cart.NewCart()
		p := makeProduct(t, "1", 3500, 7)

		require.NoError(t, c.Add(p))
		require.NoError(t, c.Add(p))
		require.NoError(t, c.Add(p))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity())
	})

	t.Run("should reject unconstructed product", func(t *testing.T) {
		c := cart.NewCart()

		require.Error(t, c.Add(product.Product{}))
		assert.True(t, c.IsEmpty())
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		c := cart.NewCart()
		a := makeProduct(t, "1", 3500, 7)
		b := makeProduct(t, "2", 5000, 18)

		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(b))
		require.NoError(t, c.Add(a))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1", lines[0].Product().ID())
		assert.Equal(t, "2", lines[1].Product().ID())
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("should delete the line", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))

		c.Remove("1")

		assert.True(t, c.IsEmpty())
	})

	t.Run("should be a no-op for absent product", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))

		c.Remove("999")

		assert.Len(t, c.Lines(), 1)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("should set the quantity of an existing line", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))

		c.UpdateQuantity("1", 5)

		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 5, c.Lines()[0].Quantity())
	})

	t.Run("should remove the line when quantity is zero", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))

		c.UpdateQuantity("1", 0)

		assert.True(t, c.IsEmpty())
	})

	t.Run("should remove the line on negative quantity", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))

		c.UpdateQuantity("1", -2)

		assert.True(t, c.IsEmpty())
	})

	t.Run("should not create a line for an absent product", func(t *testing.T) {
		c := cart.NewCart()

		c.UpdateQuantity("1", 3)

		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	c := cart.NewCart()
	require.NoError(t, c.Add(makeProduct(t, "1", 3500, 7)))
	require.NoError(t, c.Add(makeProduct(t, "2", 5000, 18)))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestCart_Total(t *testing.T) {
	t.Run("concrete receipt scenario", func(t *testing.T) {
		// (3.500 at 7%) x 2 + (5.000 at 18%) x 1 = 12.000
		c := cart.NewCart()
		a := makeProduct(t, "A", 3500, 7)
		b := makeProduct(t, "B", 5000, 18)
		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(b))

		assert.Equal(t, "12.000", c.Total().String())
	})

	t.Run("random carts sum exactly", func(t *testing.T) {
		rates := []int{0, 6, 7, 12, 18, 21}
		for range 50 {
			c := cart.NewCart()
			var want int64
			n := rand.IntN(8)
			for i := range n {
				millimes := int64(rand.IntN(20000))
				qty := 1 + rand.IntN(9)
				p := makeProduct(t, fmt.Sprintf("p-%d", i), millimes, rates[rand.IntN(len(rates))])
				require.NoError(t, c.Add(p))
				c.UpdateQuantity(p.ID(), qty)
				want += millimes * int64(qty)
			}
			assert.Equal(t, want, c.Total().Millimes())
		}
	})
}

func TestCart_VatBreakdown(t *testing.T) {
	t.Run("concrete receipt scenario", func(t *testing.T) {
		c := cart.NewCart()
		a := makeProduct(t, "A", 3500, 7)
		b := makeProduct(t, "B", 5000, 18)
		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(b))

		buckets := c.VatBreakdown()
		require.Len(t, buckets, 6)

		byRate := make(map[int]string, len(buckets))
		for _, bucket := range buckets {
			byRate[bucket.Rate().Percent()] = bucket.Amount().String()
		}

		assert.Equal(t, "0.490", byRate[7])
		assert.Equal(t, "0.900", byRate[18])
		assert.Equal(t, "0.000", byRate[0])
		assert.Equal(t, "0.000", byRate[21])
	})

	t.Run("includes zero-amount buckets for an empty cart", func(t *testing.T) {
		buckets := cart.NewCart().VatBreakdown()

		require.Len(t, buckets, 6)
		for _, bucket := range buckets {
			assert.True(t, bucket.Amount().IsZero())
		}
	})

	t.Run("buckets partition the cart per rate", func(t *testing.T) {
		rates := []int{0, 6, 7, 12, 18, 21}
		for range 20 {
			c := cart.NewCart()
			baseByRate := make(map[int]int64)
			n := 1 + rand.IntN(7)
			for i := range n {
				millimes := int64(rand.IntN(20000))
				qty := 1 + rand.IntN(9)
				percent := rates[rand.IntN(len(rates))]
				p := makeProduct(t, fmt.Sprintf("p-%d", i), millimes, percent)
				require.NoError(t, c.Add(p))
				c.UpdateQuantity(p.ID(), qty)
				baseByRate[percent] += millimes * int64(qty)
			}

			for _, bucket := range c.VatBreakdown() {
				// round half up at bucket level only
				n := baseByRate[bucket.Rate().Percent()] * int64(bucket.Rate().Percent())
				want := n / 100
				if n%100 >= 50 {
					want++
				}
				assert.Equal(t, want, bucket.Amount().Millimes())
			}
		}
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("should rebuild cart from persisted lines", func(t *testing.T) {
		a, err := cart.NewLine(makeProduct(t, "1", 3500, 7), 2)
		require.NoError(t, err)
		b, err := cart.NewLine(makeProduct(t, "2", 5000, 18), 1)
		require.NoError(t, err)

		c, err := cart.RestoreCart([]cart.Line{a, b})

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "12.000", c.Total().String())
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		_, err := cart.RestoreCart([]cart.Line{{}})

		require.Error(t, err)
	})
}

func TestNewLine(t *testing.T) {
	t.Run("should reject quantity below 1", func(t *testing.T) {
		_, err := cart.NewLine(makeProduct(t, "1", 3500, 7), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should compute subtotal", func(t *testing.T) {
		l, err := cart.NewLine(makeProduct(t, "1", 3500, 7), 3)

		require.NoError(t, err)
		assert.Equal(t, "10.500", l.Subtotal().String())
	})
}

func TestCart_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value carts", func(t *testing.T) {
		var nilCart *cart.Cart
		require.ErrorIs(t, nilCart.Validate(), cart.ErrCartIsNotConstructed)

		var zero cart.Cart
		require.ErrorIs(t, zero.Validate(), cart.ErrCartIsNotConstructed)
	})
}
