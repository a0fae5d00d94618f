package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/order"
)

// CheckoutRequest represents a request to purchase the cart's contents
type CheckoutRequest struct {
	ShippingAddress ShippingAddressInput `json:"shipping_address" binding:"required"`
}

// ShippingAddressInput carries the destination for the resulting orders
type ShippingAddressInput struct {
	Street  string `json:"street" binding:"required,min=1,max=200"`
	City    string `json:"city" binding:"required,min=1,max=100"`
	State   string `json:"state" binding:"required,min=1,max=100"`
	Country string `json:"country" binding:"required,min=1,max=100"`
}

// CheckoutOrderResponse represents one order produced by a checkout
type CheckoutOrderResponse struct {
	ID         uuid.UUID       `json:"id"`
	ListingID  uuid.UUID       `json:"listing_id"`
	Title      string          `json:"title"`
	Author     string          `json:"author"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	SellerID   uuid.UUID       `json:"seller_id"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CheckoutResponse represents a completed checkout
type CheckoutResponse struct {
	Orders     []CheckoutOrderResponse `json:"orders"`
	TotalPrice decimal.Decimal         `json:"total_price"`
}

// ToCheckoutResponse converts the orders produced by a checkout
func ToCheckoutResponse(orders []*order.Order) CheckoutResponse {
	responses := make([]CheckoutOrderResponse, len(orders))
	total := decimal.Zero
	for i, o := range orders {
		responses[i] = CheckoutOrderResponse{
			ID:         o.ID,
			ListingID:  o.Snapshot.ListingID,
			Title:      o.Snapshot.Title,
			Author:     o.Snapshot.Author,
			Quantity:   o.Snapshot.Quantity,
			UnitPrice:  o.Snapshot.Price,
			TotalPrice: o.TotalPrice,
			SellerID:   o.SellerID,
			Status:     o.Status.String(),
			CreatedAt:  o.CreatedAt,
		}
		total = total.Add(o.TotalPrice)
	}
	return CheckoutResponse{
		Orders:     responses,
		TotalPrice: total,
	}
}
