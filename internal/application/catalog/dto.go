package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/catalog"
)

// CreateListingRequest represents a request to publish a new listing
type CreateListingRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Author      string          `json:"author" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Condition   string          `json:"condition" binding:"required,condition"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	ImageURLs   []string        `json:"image_urls" binding:"omitempty,max=10,dive,url"`
}

// UpdateListingRequest represents a partial update to a listing
type UpdateListingRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Author      *string          `json:"author" binding:"omitempty,min=1,max=200"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Condition   *string          `json:"condition" binding:"omitempty,condition"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	ImageURLs   []string         `json:"image_urls" binding:"omitempty,max=10,dive,url"`
}

// ListingListFilter represents filter options for the listing list
type ListingListFilter struct {
	Search   string           `form:"search"`
	Category string           `form:"category"`
	PriceMin *decimal.Decimal `form:"price_min"`
	PriceMax *decimal.Decimal `form:"price_max"`
	Status   string           `form:"status"`
	Page     int              `form:"page" binding:"omitempty,min=1"`
	PageSize int              `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string           `form:"order_by" binding:"omitempty,oneof=created_at price title"`
	OrderDir string           `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ListingResponse represents a listing in API responses
type ListingResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	Condition   string          `json:"condition"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	ImageURLs   []string        `json:"image_urls"`
	SellerID    uuid.UUID       `json:"seller_id"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToListingResponse converts a domain listing to a response DTO
func ToListingResponse(l *catalog.Listing) ListingResponse {
	imageURLs := l.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Author:      l.Author,
		Category:    l.Category,
		Condition:   l.Condition.String(),
		Price:       l.Price,
		Description: l.Description,
		ImageURLs:   imageURLs,
		SellerID:    l.SellerID,
		Status:      l.Status.String(),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ToListingResponses converts a slice of domain listings
func ToListingResponses(listings []catalog.Listing) []ListingResponse {
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i])
	}
	return responses
}
