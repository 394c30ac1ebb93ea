package client_test

import (
	"testing"
	"time"

	"caisse/internal/core/domain/model/client"
	"caisse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should register a client with zeroed counters", func(t *testing.T) {
		id := kernel.NewUUID()
		phone := "+216 20 123 456"
		four, _ := kernel.NewTableNumber(4)

		c, err := client.NewClient(id, "Leila", &phone, nil, &four, createdAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Leila", c.Name())
		require.NotNil(t, c.Phone())
		assert.Equal(t, phone, *c.Phone())
		assert.Nil(t, c.Email())
		require.NotNil(t, c.TableNumber())
		assert.Equal(t, 4, c.TableNumber().Int())
		assert.True(t, c.TotalSpent().IsZero())
		assert.Zero(t, c.Visits())
		assert.Equal(t, createdAt, c.CreatedAt())
	})

	t.Run("should allow all optional fields to be absent", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Karim", nil, nil, nil, createdAt)

		require.NoError(t, err)
		assert.Nil(t, c.Phone())
		assert.Nil(t, c.Email())
		assert.Nil(t, c.TableNumber())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "", nil, nil, nil, createdAt)

		require.ErrorIs(t, err, client.ErrClientNameIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var zero kernel.UUID

		c, err := client.NewClient(zero, "Karim", nil, nil, nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with invalid table number", func(t *testing.T) {
		bad := kernel.TableNumber(0)

		c, err := client.NewClient(kernel.NewUUID(), "Karim", nil, nil, &bad, createdAt)

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with zero registration time", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Karim", nil, nil, nil, time.Time{})

		require.ErrorIs(t, err, client.ErrClientCreatedAtIsRequired)
		assert.Nil(t, c)
	})
}

func TestRestoreClient(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("should restore accumulated counters", func(t *testing.T) {
		spent, _ := kernel.NewMoneyFromMillimes(42500)

		c, err := client.RestoreClient(kernel.NewUUID(), "Leila", nil, nil, nil, spent, 3, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "42.500", c.TotalSpent().String())
		assert.Equal(t, 3, c.Visits())
	})

	t.Run("should reject negative visits", func(t *testing.T) {
		_, err := client.RestoreClient(kernel.NewUUID(), "Leila", nil, nil, nil, kernel.Money{}, -1, createdAt)

		require.Error(t, err)
	})
}

func TestClient_RecordVisit(t *testing.T) {
	createdAt := time.Now().UTC()

	c, err := client.NewClient(kernel.NewUUID(), "Leila", nil, nil, nil, createdAt)
	require.NoError(t, err)

	first, _ := kernel.NewMoneyFromMillimes(12000)
	second, _ := kernel.NewMoneyFromMillimes(8500)
	c.RecordVisit(first)
	c.RecordVisit(second)

	assert.Equal(t, "20.500", c.TotalSpent().String())
	assert.Equal(t, 2, c.Visits())
}

func TestClient_Validate(t *testing.T) {
	t.Run("should fail validation for nil client", func(t *testing.T) {
		var c *client.Client

		require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})

	t.Run("should fail validation for zero value client", func(t *testing.T) {
		var c client.Client

		require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})
}
