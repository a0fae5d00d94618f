package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/marketplace/backend/internal/application/catalog"
)

// ListingHandler handles listing catalog endpoints
type ListingHandler struct {
	BaseHandler
	listingService *appcatalog.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService *appcatalog.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// Create publishes a new listing owned by the authenticated user
func (h *ListingHandler) Create(c *gin.Context) {
	sellerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appcatalog.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), sellerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, listing)
}

// List returns the public catalog with filtering and pagination
func (h *ListingHandler) List(c *gin.Context) {
	var filter appcatalog.ListingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	listings, total, err := h.listingService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, listings, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// Featured returns the most recent available listings
func (h *ListingHandler) Featured(c *gin.Context) {
	listings, err := h.listingService.Featured(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listings)
}

// Categories returns the distinct categories in use
func (h *ListingHandler) Categories(c *gin.Context) {
	categories, err := h.listingService.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// GetByID returns a single listing
func (h *ListingHandler) GetByID(c *gin.Context) {
	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.GetByID(c.Request.Context(), listingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listing)
}

// ListMine returns the authenticated user's own listings
func (h *ListingHandler) ListMine(c *gin.Context) {
	sellerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter appcatalog.ListingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	listings, err := h.listingService.ListBySeller(c.Request.Context(), sellerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listings)
}

// Update modifies a listing owned by the authenticated user
func (h *ListingHandler) Update(c *gin.Context) {
	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	var req appcatalog.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), callerID, listingID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, listing)
}

// Delete removes a listing owned by the authenticated user
func (h *ListingHandler) Delete(c *gin.Context) {
	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listingID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid listing ID")
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), callerID, listingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
