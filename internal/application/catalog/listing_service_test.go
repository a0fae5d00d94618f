package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
)

// MockListingRepository is a mock implementation of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]catalog.Listing, error) {
	args := m.Called(ctx, sellerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Listing), args.Error(1)
}

func (m *MockListingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockListingRepository) Save(ctx context.Context, listing *catalog.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to catalog.ListingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestListing(t *testing.T, sellerID uuid.UUID) *catalog.Listing {
	t.Helper()
	listing, err := catalog.NewListing(sellerID, "Gödel, Escher, Bach", "Douglas Hofstadter", "Books", catalog.ConditionGood, decimal.NewFromInt(18))
	require.NoError(t, err)
	listing.ClearDomainEvents()
	return listing
}

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("creates listing", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Listing")).Return(nil)

		resp, err := service.Create(ctx, sellerID, CreateListingRequest{
			Title:       "Gödel, Escher, Bach",
			Author:      "Douglas Hofstadter",
			Category:    "Books",
			Condition:   "Good",
			Price:       decimal.NewFromInt(18),
			Description: "A few dog-eared pages.",
			ImageURLs:   []string{"https://cdn.example.com/geb.jpg"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Gödel, Escher, Bach", resp.Title)
		assert.Equal(t, "Available", resp.Status)
		assert.Equal(t, sellerID, resp.SellerID)
		assert.Equal(t, "A few dog-eared pages.", resp.Description)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid condition", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)

		_, err := service.Create(ctx, sellerID, CreateListingRequest{
			Title:     "Book",
			Author:    "Someone",
			Category:  "Books",
			Condition: "Mint",
			Price:     decimal.NewFromInt(5),
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestListingService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("public browse only shows available listings", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)

		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "Available"
		})).Return([]catalog.Listing{*newTestListing(t, uuid.New())}, nil)
		repo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		items, total, err := service.List(ctx, ListingListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		repo.AssertExpectations(t)
	})

	t.Run("carries price range filters", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)

		priceMin := decimal.NewFromInt(5)
		priceMax := decimal.NewFromInt(50)
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			_, hasMin := f.Filters["price_min"]
			_, hasMax := f.Filters["price_max"]
			return hasMin && hasMax && f.Filters["category"] == "Books"
		})).Return([]catalog.Listing{}, nil)
		repo.On("Count", ctx, mock.Anything).Return(int64(0), nil)

		_, _, err := service.List(ctx, ListingListFilter{
			Category: "Books",
			PriceMin: &priceMin,
			PriceMax: &priceMax,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestListingService_Featured(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListingRepository)
	service := NewListingService(repo)

	repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.PageSize == featuredCount && f.Filters["status"] == "Available" && f.OrderBy == "created_at" && f.OrderDir == "desc"
	})).Return([]catalog.Listing{}, nil)

	_, err := service.Featured(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListingService_Update(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("owner updates listing", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)
		repo.On("Save", ctx, listing).Return(nil)

		newTitle := "GEB: An Eternal Golden Braid"
		newPrice := decimal.NewFromInt(20)
		resp, err := service.Update(ctx, sellerID, listing.ID, UpdateListingRequest{
			Title: &newTitle,
			Price: &newPrice,
		})

		require.NoError(t, err)
		assert.Equal(t, "GEB: An Eternal Golden Braid", resp.Title)
		assert.True(t, resp.Price.Equal(newPrice))
		assert.Equal(t, "Douglas Hofstadter", resp.Author)
		repo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		newTitle := "Hijacked"
		_, err := service.Update(ctx, uuid.New(), listing.ID, UpdateListingRequest{Title: &newTitle})
		assert.ErrorIs(t, err, shared.ErrForbidden)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("sold listing is frozen", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)
		require.NoError(t, listing.MarkSold())

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		newTitle := "Too late"
		_, err := service.Update(ctx, sellerID, listing.ID, UpdateListingRequest{Title: &newTitle})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestListingService_Delete(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("owner deletes available listing", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)
		repo.On("Delete", ctx, listing.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, sellerID, listing.ID))
		repo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		err := service.Delete(ctx, uuid.New(), listing.ID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("sold listing cannot be deleted", func(t *testing.T) {
		repo := new(MockListingRepository)
		service := NewListingService(repo)
		listing := newTestListing(t, sellerID)
		require.NoError(t, listing.MarkSold())

		repo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		err := service.Delete(ctx, sellerID, listing.ID)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete")
	})
}
