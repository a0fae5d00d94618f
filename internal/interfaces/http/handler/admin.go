package handler

import (
	"github.com/gin-gonic/gin"

	appadmin "github.com/marketplace/backend/internal/application/admin"
	appcatalog "github.com/marketplace/backend/internal/application/catalog"
	apporder "github.com/marketplace/backend/internal/application/order"
)

// AdminHandler handles moderation and dashboard endpoints.
// All routes require the admin role.
type AdminHandler struct {
	BaseHandler
	adminService *appadmin.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *appadmin.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats returns marketplace totals for the dashboard
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListUsers returns all accounts with filtering and pagination
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter appadmin.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	users, total, err := h.adminService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// GetUser returns a single account
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// CreateUser creates an account on a user's behalf
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req appadmin.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.adminService.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// SetUserStatus suspends or reinstates an account
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appadmin.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.adminService.SetUserStatus(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SetUserRole changes an account's permission level
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appadmin.SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.adminService.SetUserRole(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ResetUserPassword replaces an account's password
func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appadmin.ResetUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.adminService.ResetUserPassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DeleteUser removes an account
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListUserOrders returns a user's purchases and sales
func (h *AdminHandler) ListUserOrders(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	orders, err := h.adminService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// ListUserListings returns every listing a user has posted
func (h *AdminHandler) ListUserListings(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	listings, err := h.adminService.ListUserListings(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listings)
}

// ListListings returns all listings regardless of status
func (h *AdminHandler) ListListings(c *gin.Context) {
	var filter appcatalog.ListingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	listings, total, err := h.adminService.ListListings(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, listings, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// GetListing returns a single listing in any status
func (h *AdminHandler) GetListing(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	listing, err := h.adminService.GetListing(c.Request.Context(), listingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listing)
}

// ForceListingStatus overrides a listing's status, bypassing ownership
func (h *AdminHandler) ForceListingStatus(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	var req appadmin.ForceListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	listing, err := h.adminService.ForceListingStatus(c.Request.Context(), listingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listing)
}

// RemoveListing deletes a listing as a moderation action
func (h *AdminHandler) RemoveListing(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	if err := h.adminService.RemoveListing(c.Request.Context(), listingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListOrders returns all orders across the marketplace
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var filter apporder.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	orders, total, err := h.adminService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// GetOrder returns a single order regardless of buyer or seller
func (h *AdminHandler) GetOrder(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.adminService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateOrderStatus changes an order's status, bypassing the caller role
// check but not the transition rules
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req appadmin.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	order, err := h.adminService.UpdateOrderStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
