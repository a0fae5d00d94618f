package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appcatalog "github.com/marketplace/backend/internal/application/catalog"
	appidentity "github.com/marketplace/backend/internal/application/identity"
	apporder "github.com/marketplace/backend/internal/application/order"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/auth"
)

// AdminService handles moderation. Every operation here bypasses the
// ownership checks ordinary users are subject to; the HTTP layer admits
// only admin accounts. Status transition rules still apply to orders.
type AdminService struct {
	userRepo    identity.UserRepository
	listingRepo catalog.ListingRepository
	orderRepo   order.Repository
	revocation  auth.TokenRevocationStore
	logger      *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo identity.UserRepository,
	listingRepo catalog.ListingRepository,
	orderRepo order.Repository,
	revocation auth.TokenRevocationStore,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		orderRepo:   orderRepo,
		revocation:  revocation,
		logger:      logger,
	}
}

// Stats gathers marketplace totals for the dashboard
func (s *AdminService) Stats(ctx context.Context) (*MarketplaceStats, error) {
	stats := &MarketplaceStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx, shared.DefaultFilter()); err != nil {
		return nil, err
	}
	if stats.SuspendedUsers, err = s.userRepo.Count(ctx, filterWith("status", "suspended")); err != nil {
		return nil, err
	}
	if stats.TotalListings, err = s.listingRepo.Count(ctx, shared.DefaultFilter()); err != nil {
		return nil, err
	}
	if stats.AvailableListings, err = s.listingRepo.Count(ctx, filterWith("status", catalog.ListingStatusAvailable.String())); err != nil {
		return nil, err
	}
	if stats.SoldListings, err = s.listingRepo.Count(ctx, filterWith("status", catalog.ListingStatusSold.String())); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx, shared.DefaultFilter()); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.orderRepo.Count(ctx, filterWith("status", order.StatusPending.String())); err != nil {
		return nil, err
	}

	return stats, nil
}

// ListUsers retrieves accounts with filtering and pagination
func (s *AdminService) ListUsers(ctx context.Context, filter UserListFilter) ([]appidentity.ProfileResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	page, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]appidentity.ProfileResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = appidentity.ToProfileResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// GetUser retrieves a single account
func (s *AdminService) GetUser(ctx context.Context, userID uuid.UUID) (*appidentity.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := appidentity.ToProfileResponse(user)
	return &response, nil
}

// CreateUser creates an account on behalf of a user, optionally with the
// admin role
func (s *AdminService) CreateUser(ctx context.Context, req CreateUserRequest) (*appidentity.ProfileResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	var user *identity.User
	if req.Role == identity.RoleAdmin.String() {
		user, err = identity.NewAdmin(req.FullName, req.Email, req.Password)
	} else {
		user, err = identity.NewUser(req.FullName, req.Email, req.Password)
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))

	response := appidentity.ToProfileResponse(user)
	return &response, nil
}

// SetUserStatus suspends or reinstates an account
func (s *AdminService) SetUserStatus(ctx context.Context, userID uuid.UUID, req SetUserStatusRequest) error {
	if req.Status == string(identity.UserStatusSuspended) {
		return s.SuspendUser(ctx, userID)
	}
	return s.ReinstateUser(ctx, userID)
}

// SetUserRole changes an account's permission level
func (s *AdminService) SetUserRole(ctx context.Context, userID uuid.UUID, req SetUserRoleRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetRole(identity.Role(req.Role)); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User role changed",
		zap.String("user_id", userID.String()),
		zap.String("role", req.Role))
	return nil
}

// ResetUserPassword replaces an account's password and signs out its
// open sessions
func (s *AdminService) ResetUserPassword(ctx context.Context, userID uuid.UUID, req ResetUserPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.revocation.RevokeAllForUser(ctx, userID.String(), 168*time.Hour); err != nil {
		s.logger.Error("Failed to revoke sessions after password reset", zap.Error(err))
	}

	s.logger.Info("User password reset", zap.String("user_id", userID.String()))
	return nil
}

// DeleteUser removes an account. Admin accounts cannot be deleted.
func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return shared.NewDomainError("FORBIDDEN", "Admin accounts cannot be deleted")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if err := s.revocation.RevokeAllForUser(ctx, userID.String(), 168*time.Hour); err != nil {
		s.logger.Error("Failed to revoke sessions after account deletion", zap.Error(err))
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
}

// ListUserOrders retrieves a user's purchases and sales for moderation
func (s *AdminService) ListUserOrders(ctx context.Context, userID uuid.UUID) (*UserOrdersResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	purchases, err := s.orderRepo.FindByBuyer(ctx, userID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	sales, err := s.orderRepo.FindBySeller(ctx, userID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return &UserOrdersResponse{
		Purchases: apporder.ToOrderResponses(purchases.Items),
		Sales:     apporder.ToOrderResponses(sales.Items),
	}, nil
}

// ListUserListings retrieves every listing a user has posted
func (s *AdminService) ListUserListings(ctx context.Context, userID uuid.UUID) ([]appcatalog.ListingResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindBySeller(ctx, userID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return appcatalog.ToListingResponses(listings), nil
}

// SuspendUser blocks an account from logging in. Admins cannot suspend
// each other through this path.
func (s *AdminService) SuspendUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return shared.NewDomainError("FORBIDDEN", "Admin accounts cannot be suspended")
	}

	if err := user.Suspend(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User suspended", zap.String("user_id", userID.String()))
	return nil
}

// ReinstateUser restores a suspended account
func (s *AdminService) ReinstateUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Reinstate(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User reinstated", zap.String("user_id", userID.String()))
	return nil
}

// ListListings retrieves listings in any status
func (s *AdminService) ListListings(ctx context.Context, filter appcatalog.ListingListFilter) ([]appcatalog.ListingResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	listings, err := s.listingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.listingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return appcatalog.ToListingResponses(listings), total, nil
}

// GetListing retrieves a single listing in any status
func (s *AdminService) GetListing(ctx context.Context, listingID uuid.UUID) (*appcatalog.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	response := appcatalog.ToListingResponse(listing)
	return &response, nil
}

// ForceListingStatus overrides a listing's status without transition checks
func (s *AdminService) ForceListingStatus(ctx context.Context, listingID uuid.UUID, req ForceListingStatusRequest) (*appcatalog.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := listing.ForceStatus(catalog.ListingStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}

	s.logger.Info("Listing status overridden",
		zap.String("listing_id", listingID.String()),
		zap.String("status", req.Status))

	response := appcatalog.ToListingResponse(listing)
	return &response, nil
}

// RemoveListing deletes a listing regardless of owner
func (s *AdminService) RemoveListing(ctx context.Context, listingID uuid.UUID) error {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		return err
	}

	s.logger.Info("Listing removed", zap.String("listing_id", listingID.String()))
	return nil
}

// ListOrders retrieves orders across all buyers and sellers
func (s *AdminService) ListOrders(ctx context.Context, filter apporder.OrderListFilter) ([]apporder.OrderResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	page, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return apporder.ToOrderResponses(page.Items), page.Total, nil
}

// GetOrder retrieves a single order regardless of buyer or seller
func (s *AdminService) GetOrder(ctx context.Context, orderID uuid.UUID) (*apporder.OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := apporder.ToOrderResponse(o)
	return &response, nil
}

// UpdateOrderStatus changes an order's status on behalf of any seller.
// The fulfillment state machine still applies.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*apporder.OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(order.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order status overridden",
		zap.String("order_id", orderID.String()),
		zap.String("status", req.Status))

	response := apporder.ToOrderResponse(o)
	return &response, nil
}

func filterWith(key string, value interface{}) shared.Filter {
	f := shared.DefaultFilter()
	f.Filters[key] = value
	return f
}
