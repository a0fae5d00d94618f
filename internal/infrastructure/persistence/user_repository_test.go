package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/shared"
)

func newUser(t *testing.T, name, email string) *identity.User {
	t.Helper()
	u, err := identity.NewUser(name, email, "password1")
	require.NoError(t, err)
	u.ClearDomainEvents()
	return u
}

func TestGormUserRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u := newUser(t, "Jane Doe", "jane@example.com")
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "Jane Doe", found.FullName)
	assert.Equal(t, identity.RoleUser, found.Role)
	assert.Equal(t, identity.UserStatusActive, found.Status)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u := newUser(t, "Jane Doe", "jane@example.com")
	require.NoError(t, repo.Save(ctx, u))

	t.Run("case insensitive lookup", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "Jane@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newUser(t, "Jane Doe", "jane@example.com")))

	exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_FindAll_RoleAndStatusFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newUser(t, "Jane Doe", "jane@example.com")))

	admin, err := identity.NewAdmin("Root", "root@example.com", "password1")
	require.NoError(t, err)
	admin.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, admin))

	suspended := newUser(t, "Bad Actor", "bad@example.com")
	require.NoError(t, suspended.Suspend())
	suspended.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, suspended))

	filter := shared.DefaultFilter()
	filter.Filters["role"] = identity.RoleAdmin.String()
	page, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Root", page.Items[0].FullName)

	filter = shared.DefaultFilter()
	filter.Filters["status"] = string(identity.UserStatusSuspended)
	page, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bad Actor", page.Items[0].FullName)
}

func TestGormUserRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newUser(t, "Jane Doe", "jane@example.com")))
	require.NoError(t, repo.Save(ctx, newUser(t, "John Doe", "john@example.com")))

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormUserRepository_SaveUpdatesExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u := newUser(t, "Jane Doe", "jane@example.com")
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, u.SetBio("Collector of rare paperbacks"))
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Collector of rare paperbacks", found.Bio)

	var count int64
	require.NoError(t, db.Table("users").Where("id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
