package cart

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/shared"
)

func TestNewCart(t *testing.T) {
	t.Run("creates empty cart", func(t *testing.T) {
		userID := uuid.New()
		c, err := NewCart(userID)
		require.NoError(t, err)
		assert.Equal(t, userID, c.UserID)
		assert.True(t, c.IsEmpty())
		assert.True(t, c.Subtotal().IsZero())
	})

	t.Run("rejects empty user", func(t *testing.T) {
		_, err := NewCart(uuid.Nil)
		assert.Error(t, err)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("adds item", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		listingID := uuid.New()

		item, err := c.AddItem(listingID, "The Go Programming Language", decimal.NewFromInt(25), 1)
		require.NoError(t, err)
		assert.Equal(t, listingID, item.ListingID)
		assert.Equal(t, 1, item.Quantity)
		assert.False(t, c.IsEmpty())
		assert.True(t, c.ContainsListing(listingID))
	})

	t.Run("rejects duplicate listing", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		listingID := uuid.New()

		_, err := c.AddItem(listingID, "SICP", decimal.NewFromInt(30), 1)
		require.NoError(t, err)

		_, err = c.AddItem(listingID, "SICP", decimal.NewFromInt(30), 2)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "DUPLICATE_ITEM", domainErr.Code)
		assert.Len(t, c.Items, 1)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		_, err := c.AddItem(uuid.New(), "SICP", decimal.NewFromInt(30), 0)
		assert.Error(t, err)
	})
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	t.Run("updates quantity", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		item, _ := c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)

		err := c.UpdateItemQuantity(item.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Items[0].Quantity)
	})

	t.Run("zero quantity removes item", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		item, _ := c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 2)

		err := c.UpdateItemQuantity(item.ID, 0)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("negative quantity removes item", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		item, _ := c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 2)

		err := c.UpdateItemQuantity(item.ID, -1)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown item", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		err := c.UpdateItemQuantity(uuid.New(), 1)
		assert.Error(t, err)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("removes item", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		item, _ := c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)
		other, _ := c.AddItem(uuid.New(), "Neuromancer", decimal.NewFromInt(12), 1)

		c.RemoveItem(item.ID)
		require.Len(t, c.Items, 1)
		assert.Equal(t, other.ID, c.Items[0].ID)
	})

	t.Run("removing absent item is a no-op", func(t *testing.T) {
		c, _ := NewCart(uuid.New())
		c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)

		c.RemoveItem(uuid.New())
		assert.Len(t, c.Items, 1)
	})
}

func TestCart_Clear(t *testing.T) {
	c, _ := NewCart(uuid.New())
	c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)
	c.AddItem(uuid.New(), "Neuromancer", decimal.NewFromInt(12), 2)

	c.Clear()
	assert.True(t, c.IsEmpty())

	// clearing twice is safe
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCart_Subtotal(t *testing.T) {
	c, _ := NewCart(uuid.New())
	c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 2)
	c.AddItem(uuid.New(), "Neuromancer", decimal.RequireFromString("12.50"), 1)

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("32.50")))
}
