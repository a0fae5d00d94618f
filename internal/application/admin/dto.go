package admin

import (
	apporder "github.com/marketplace/backend/internal/application/order"
)

// MarketplaceStats summarizes the marketplace for the admin dashboard
type MarketplaceStats struct {
	TotalUsers        int64 `json:"total_users"`
	SuspendedUsers    int64 `json:"suspended_users"`
	TotalListings     int64 `json:"total_listings"`
	AvailableListings int64 `json:"available_listings"`
	SoldListings      int64 `json:"sold_listings"`
	TotalOrders       int64 `json:"total_orders"`
	PendingOrders     int64 `json:"pending_orders"`
}

// UserListFilter represents filter options for the admin user list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=user admin"`
	Status   string `form:"status" binding:"omitempty,oneof=active suspended"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateUserRequest represents an administratively created account
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// SetUserStatusRequest represents an administrative account status change
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// SetUserRoleRequest represents an administrative role change
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// ResetUserPasswordRequest represents an administrative password reset
type ResetUserPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ForceListingStatusRequest represents an administrative status override
type ForceListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Available Pending Sold"`
}

// UserOrdersResponse groups a user's order history for moderation views
type UserOrdersResponse struct {
	Purchases []apporder.OrderResponse `json:"purchases"`
	Sales     []apporder.OrderResponse `json:"sales"`
}

// UpdateOrderStatusRequest represents an administrative order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}
