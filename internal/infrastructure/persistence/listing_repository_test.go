package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
)

func newListing(t *testing.T, title string, price int64) *catalog.Listing {
	t.Helper()
	listing, err := catalog.NewListing(uuid.New(), title, "Frank Herbert", "Books", catalog.ConditionGood, decimal.NewFromInt(price))
	require.NoError(t, err)
	listing.ClearDomainEvents()
	return listing
}

func TestGormListingRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing(t, "Dune", 10)
	listing.SetImageURLs([]string{"https://img.example.com/dune.jpg"})
	require.NoError(t, repo.Save(ctx, listing))

	found, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, found.ID)
	assert.Equal(t, "Dune", found.Title)
	assert.True(t, decimal.NewFromInt(10).Equal(found.Price))
	assert.Equal(t, catalog.ListingStatusAvailable, found.Status)
	assert.Equal(t, []string{"https://img.example.com/dune.jpg"}, found.ImageURLs)
}

func TestGormListingRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormListingRepository_FindAll_StatusAndCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	available := newListing(t, "Dune", 10)
	require.NoError(t, repo.Save(ctx, available))

	sold := newListing(t, "Neuromancer", 5)
	require.NoError(t, sold.MarkSold())
	sold.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, sold))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = catalog.ListingStatusAvailable.String()

	listings, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Dune", listings[0].Title)

	filter = shared.DefaultFilter()
	filter.Filters["category"] = "Records"
	listings, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestGormListingRepository_FindAll_PriceRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newListing(t, "Cheap", 5)))
	require.NoError(t, repo.Save(ctx, newListing(t, "Mid", 20)))
	require.NoError(t, repo.Save(ctx, newListing(t, "Expensive", 100)))

	filter := shared.DefaultFilter()
	filter.Filters["price_min"] = "10"
	filter.Filters["price_max"] = "50"

	listings, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Mid", listings[0].Title)
}

func TestGormListingRepository_FindBySeller(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	mine := newListing(t, "Dune", 10)
	require.NoError(t, repo.Save(ctx, mine))
	require.NoError(t, repo.Save(ctx, newListing(t, "Neuromancer", 5)))

	listings, err := repo.FindBySeller(ctx, mine.SellerID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, mine.ID, listings[0].ID)
}

func TestGormListingRepository_Categories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newListing(t, "Dune", 10)))
	require.NoError(t, repo.Save(ctx, newListing(t, "Foundation", 8)))

	other, err := catalog.NewListing(uuid.New(), "Kind of Blue", "Miles Davis", "Records", catalog.ConditionLikeNew, decimal.NewFromInt(30))
	require.NoError(t, err)
	other.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, other))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Books", "Records"}, categories)
}

func TestGormListingRepository_TransitionStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing(t, "Dune", 10)
	require.NoError(t, repo.Save(ctx, listing))

	t.Run("first transition wins", func(t *testing.T) {
		ok, err := repo.TransitionStatus(ctx, listing.ID, catalog.ListingStatusAvailable, catalog.ListingStatusSold)
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := repo.FindByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, catalog.ListingStatusSold, found.Status)
	})

	t.Run("second transition loses", func(t *testing.T) {
		ok, err := repo.TransitionStatus(ctx, listing.ID, catalog.ListingStatusAvailable, catalog.ListingStatusSold)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing listing loses without error", func(t *testing.T) {
		ok, err := repo.TransitionStatus(ctx, uuid.New(), catalog.ListingStatusAvailable, catalog.ListingStatusSold)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGormListingRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormListingRepository(db)
	ctx := context.Background()

	listing := newListing(t, "Dune", 10)
	require.NoError(t, repo.Save(ctx, listing))
	require.NoError(t, repo.Delete(ctx, listing.ID))

	_, err := repo.FindByID(ctx, listing.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	assert.Equal(t, shared.ErrNotFound, repo.Delete(ctx, listing.ID))
}

// newMockListingRepository creates a repository backed by sqlmock for
// asserting the generated SQL
func newMockListingRepository(t *testing.T) (*GormListingRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormListingRepository(gormDB), mock, mockDB
}

func TestGormListingRepository_FindAll_SearchUsesILIKE(t *testing.T) {
	repo, mock, mockDB := newMockListingRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "author", "category", "condition", "price", "seller_id", "status"}).
		AddRow(uuid.New(), "Dune", "Frank Herbert", "Books", "Good", decimal.NewFromInt(10), uuid.New(), "Available")

	mock.ExpectQuery(`SELECT \* FROM "listings" WHERE title ILIKE \$1.*`).
		WithArgs("%dune%", 20).
		WillReturnRows(rows)

	filter := shared.DefaultFilter()
	filter.Search = "dune"

	listings, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Dune", listings[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
