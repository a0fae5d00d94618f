package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/cart"
)

// AddItemRequest represents a request to add a listing to the cart
type AddItemRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateItemRequest represents a request to change an item's quantity.
// A quantity of zero removes the item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0,max=99"`
}

// CartItemResponse represents a cart item in API responses
type CartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ListingID uuid.UUID       `json:"listing_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// CartResponse represents a cart in API responses
type CartResponse struct {
	ID       uuid.UUID          `json:"id"`
	UserID   uuid.UUID          `json:"user_id"`
	Items    []CartItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

// ToCartResponse converts a domain cart to a response DTO
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemResponse{
			ID:        item.ID,
			ListingID: item.ListingID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			AddedAt:   item.CreatedAt,
		}
	}
	return CartResponse{
		ID:       c.ID,
		UserID:   c.UserID,
		Items:    items,
		Subtotal: c.Subtotal(),
	}
}
