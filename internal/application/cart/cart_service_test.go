package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketplace/backend/internal/domain/cart"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockListingRepository is a mock implementation of catalog.ListingRepository
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

func newAvailableListing(t *testing.T, sellerID uuid.UUID, title string, price int64) *catalog.Listing {
	t.Helper()
	listing, err := catalog.NewListing(sellerID, title, "Anonymous", "Books", catalog.ConditionGood, decimal.NewFromInt(price))
	require.NoError(t, err)
	listing.ClearDomainEvents()
	return listing
}

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns empty cart for new user without persisting", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		cartRepo.On("FindByUser", ctx, userID).Return(nil, nil)

		resp, err := service.Get(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.True(t, resp.Subtotal.IsZero())
		cartRepo.AssertNotCalled(t, "Save")
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()

	t.Run("creates cart on first add", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		listing := newAvailableListing(t, sellerID, "Dune", 10)
		listingRepo.On("FindByID", ctx, listing.ID).Return(listing, nil)
		cartRepo.On("FindByUser", ctx, userID).Return(nil, nil)
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil)

		resp, err := service.AddItem(ctx, userID, AddItemRequest{ListingID: listing.ID})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Dune", resp.Items[0].Title)
		assert.Equal(t, 1, resp.Items[0].Quantity)
		assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(10)))
		cartRepo.AssertExpectations(t)
	})

	t.Run("rejects sold listing", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		listing := newAvailableListing(t, sellerID, "Dune", 10)
		require.NoError(t, listing.MarkSold())
		listingRepo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		_, err := service.AddItem(ctx, userID, AddItemRequest{ListingID: listing.ID})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LISTING_UNAVAILABLE", domainErr.Code)
		assert.Contains(t, domainErr.Message, "Dune")
		cartRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects own listing", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		listing := newAvailableListing(t, userID, "Dune", 10)
		listingRepo.On("FindByID", ctx, listing.ID).Return(listing, nil)

		_, err := service.AddItem(ctx, userID, AddItemRequest{ListingID: listing.ID})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SELF_PURCHASE", domainErr.Code)
	})

	t.Run("rejects duplicate listing", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		listing := newAvailableListing(t, sellerID, "Dune", 10)
		existing, _ := cart.NewCart(userID)
		_, err := existing.AddItem(listing.ID, listing.Title, listing.Price, 1)
		require.NoError(t, err)

		listingRepo.On("FindByID", ctx, listing.ID).Return(listing, nil)
		cartRepo.On("FindByUser", ctx, userID).Return(existing, nil)

		_, err = service.AddItem(ctx, userID, AddItemRequest{ListingID: listing.ID})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ITEM", domainErr.Code)
		cartRepo.AssertNotCalled(t, "Save")
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		existing, _ := cart.NewCart(userID)
		item, _ := existing.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)

		cartRepo.On("FindByUser", ctx, userID).Return(existing, nil)
		cartRepo.On("Save", ctx, existing).Return(nil)

		resp, err := service.UpdateItem(ctx, userID, item.ID, UpdateItemRequest{Quantity: 3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
	})

	t.Run("zero quantity removes item", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		existing, _ := cart.NewCart(userID)
		item, _ := existing.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 2)

		cartRepo.On("FindByUser", ctx, userID).Return(existing, nil)
		cartRepo.On("Save", ctx, existing).Return(nil)

		resp, err := service.UpdateItem(ctx, userID, item.ID, UpdateItemRequest{Quantity: 0})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})

	t.Run("no cart yet", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		cartRepo.On("FindByUser", ctx, userID).Return(nil, nil)

		_, err := service.UpdateItem(ctx, userID, uuid.New(), UpdateItemRequest{Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("clears existing cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		existing, _ := cart.NewCart(userID)
		existing.AddItem(uuid.New(), "Dune", decimal.NewFromInt(10), 1)

		cartRepo.On("FindByUser", ctx, userID).Return(existing, nil)
		cartRepo.On("Save", ctx, existing).Return(nil)

		require.NoError(t, service.Clear(ctx, userID))
		assert.True(t, existing.IsEmpty())
	})

	t.Run("clearing without a cart is a no-op", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		listingRepo := new(MockListingRepository)
		service := NewCartService(cartRepo, listingRepo)

		cartRepo.On("FindByUser", ctx, userID).Return(nil, nil)

		require.NoError(t, service.Clear(ctx, userID))
		cartRepo.AssertNotCalled(t, "Save")
	})
}
