package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/cart"
)

func newCartWithItem(t *testing.T, userID uuid.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	_, err = c.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 2)
	require.NoError(t, err)
	return c
}

func TestGormCartRepository_SaveAndFindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newCartWithItem(t, userID)
	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Dune", found.Items[0].Title)
	assert.Equal(t, 2, found.Items[0].Quantity)
}

func TestGormCartRepository_FindByUser_NoCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)

	found, err := repo.FindByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGormCartRepository_SaveReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newCartWithItem(t, userID)
	require.NoError(t, repo.Save(ctx, c))

	_, err := c.AddItem(uuid.New(), "Neuromancer", decimal.NewFromInt(5), 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)

	c.Clear()
	require.NoError(t, repo.Save(ctx, c))

	found, err = repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found.Items)
}

func TestGormCartRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCartRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	c := newCartWithItem(t, userID)
	require.NoError(t, repo.Save(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var count int64
	require.NoError(t, db.Table("cart_items").Where("cart_id = ?", c.ID).Count(&count).Error)
	assert.Zero(t, count)
}
