package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
	"github.com/marketplace/backend/internal/infrastructure/auth"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[identity.User], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[identity.User]), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementTotalSales(ctx context.Context, sellerID uuid.UUID) error {
	args := m.Called(ctx, sellerID)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (*shared.Paginated[order.Order], error) {
	args := m.Called(ctx, buyerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[order.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (*shared.Paginated[order.Order], error) {
	args := m.Called(ctx, sellerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[order.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[order.Order], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[order.Order]), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type adminFixture struct {
	userRepo    *MockUserRepository
	listingRepo *MockListingRepository
	orderRepo   *MockOrderRepository
	service     *AdminService
}

func newAdminFixture() *adminFixture {
	userRepo := new(MockUserRepository)
	listingRepo := new(MockListingRepository)
	orderRepo := new(MockOrderRepository)
	return &adminFixture{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		orderRepo:   orderRepo,
		service:     NewAdminService(userRepo, listingRepo, orderRepo, auth.NewInMemoryRevocationStore(), zap.NewNop()),
	}
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.userRepo.On("Count", ctx, mock.Anything).Return(int64(10), nil)
	f.listingRepo.On("Count", ctx, mock.Anything).Return(int64(25), nil)
	f.orderRepo.On("Count", ctx, mock.Anything).Return(int64(7), nil)

	stats, err := f.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(25), stats.TotalListings)
	assert.Equal(t, int64(7), stats.TotalOrders)
}

func TestAdminService_SuspendUser(t *testing.T) {
	ctx := context.Background()

	t.Run("suspends a regular user", func(t *testing.T) {
		f := newAdminFixture()

		user, err := identity.NewUser("Jane Doe", "jane@example.com", "password1")
		require.NoError(t, err)

		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		f.userRepo.On("Save", ctx, user).Return(nil)

		require.NoError(t, f.service.SuspendUser(ctx, user.ID))
		assert.False(t, user.IsActive())
	})

	t.Run("refuses to suspend an admin", func(t *testing.T) {
		f := newAdminFixture()

		adminUser, err := identity.NewAdmin("Root", "root@example.com", "password1")
		require.NoError(t, err)

		f.userRepo.On("FindByID", ctx, adminUser.ID).Return(adminUser, nil)

		err = f.service.SuspendUser(ctx, adminUser.ID)
		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Save")
	})
}

func TestAdminService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an admin account", func(t *testing.T) {
		f := newAdminFixture()

		f.userRepo.On("ExistsByEmail", ctx, "root@example.com").Return(false, nil)
		f.userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := f.service.CreateUser(ctx, CreateUserRequest{
			FullName: "Root",
			Email:    "root@example.com",
			Password: "password1",
			Role:     "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newAdminFixture()

		f.userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		_, err := f.service.CreateUser(ctx, CreateUserRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Password: "password1",
		})
		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Save")
	})
}

func TestAdminService_SetUserRole(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	user, err := identity.NewUser("Jane Doe", "jane@example.com", "password1")
	require.NoError(t, err)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.userRepo.On("Save", ctx, user).Return(nil)

	require.NoError(t, f.service.SetUserRole(ctx, user.ID, SetUserRoleRequest{Role: "admin"}))
	assert.True(t, user.IsAdmin())
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a regular user", func(t *testing.T) {
		f := newAdminFixture()

		user, err := identity.NewUser("Jane Doe", "jane@example.com", "password1")
		require.NoError(t, err)

		f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		f.userRepo.On("Delete", ctx, user.ID).Return(nil)

		require.NoError(t, f.service.DeleteUser(ctx, user.ID))
	})

	t.Run("refuses to delete an admin", func(t *testing.T) {
		f := newAdminFixture()

		adminUser, err := identity.NewAdmin("Root", "root@example.com", "password1")
		require.NoError(t, err)

		f.userRepo.On("FindByID", ctx, adminUser.ID).Return(adminUser, nil)

		err = f.service.DeleteUser(ctx, adminUser.ID)
		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Delete")
	})
}

func TestAdminService_ListUserOrders(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	user, err := identity.NewUser("Jane Doe", "jane@example.com", "password1")
	require.NoError(t, err)

	addr := mustAddress(t)
	purchase, err := order.NewOrder(user.ID, uuid.New(), order.ListingSnapshot{
		ListingID: uuid.New(),
		Title:     "Dune",
		Author:    "Frank Herbert",
		Category:  "Books",
		Price:     decimal.NewFromInt(10),
		Quantity:  1,
	}, addr)
	require.NoError(t, err)

	purchases := shared.NewPaginated([]order.Order{*purchase}, 1, 1, 20)
	sales := shared.NewPaginated([]order.Order{}, 0, 1, 20)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.orderRepo.On("FindByBuyer", ctx, user.ID, mock.Anything).Return(&purchases, nil)
	f.orderRepo.On("FindBySeller", ctx, user.ID, mock.Anything).Return(&sales, nil)

	resp, err := f.service.ListUserOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Purchases, 1)
	assert.Empty(t, resp.Sales)
}

func TestAdminService_ForceListingStatus(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	listing, err := catalog.NewListing(uuid.New(), "Dune", "Frank Herbert", "Books", catalog.ConditionGood, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, listing.MarkSold())
	listing.ClearDomainEvents()

	f.listingRepo.On("FindByID", ctx, listing.ID).Return(listing, nil)
	f.listingRepo.On("Save", ctx, listing).Return(nil)

	// a sold listing can be put back on the market by an admin
	resp, err := f.service.ForceListingStatus(ctx, listing.ID, ForceListingStatusRequest{Status: "Available"})
	require.NoError(t, err)
	assert.Equal(t, "Available", resp.Status)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		addr := mustAddress(t)
		o, err := order.NewOrder(uuid.New(), uuid.New(), order.ListingSnapshot{
			ListingID: uuid.New(),
			Title:     "Dune",
			Author:    "Frank Herbert",
			Category:  "Books",
			Price:     decimal.NewFromInt(10),
			Quantity:  1,
		}, addr)
		require.NoError(t, err)
		o.ClearDomainEvents()
		return o
	}

	t.Run("admin may advance any order", func(t *testing.T) {
		f := newAdminFixture()
		o := newOrder(t)

		f.orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.orderRepo.On("Save", ctx, o).Return(nil)

		resp, err := f.service.UpdateOrderStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "Processing"})
		require.NoError(t, err)
		assert.Equal(t, "Processing", resp.Status)
	})

	t.Run("transition rules still apply", func(t *testing.T) {
		f := newAdminFixture()
		o := newOrder(t)

		f.orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.UpdateOrderStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "Delivered"})
		assert.Error(t, err)
		f.orderRepo.AssertNotCalled(t, "Save")
	})
}

func mustAddress(t *testing.T) valueobject.ShippingAddress {
	t.Helper()
	addr, err := valueobject.NewShippingAddress("123 Main St", "Springfield", "IL", "USA")
	require.NoError(t, err)
	return addr
}
