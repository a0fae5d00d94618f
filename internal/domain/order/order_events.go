package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/shared"
)

const (
	AggregateTypeOrder = "Order"

	EventTypeOrderPlaced    = "OrderPlaced"
	EventTypeOrderCancelled = "OrderCancelled"
)

// OrderPlacedEvent is raised when a checkout records an order
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID       `json:"order_id"`
	BuyerID    uuid.UUID       `json:"buyer_id"`
	SellerID   uuid.UUID       `json:"seller_id"`
	ListingID  uuid.UUID       `json:"listing_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewOrderPlacedEvent creates an order placed event
func NewOrderPlacedEvent(orderID, buyerID, sellerID, listingID uuid.UUID, total decimal.Decimal) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, orderID),
		OrderID:         orderID,
		BuyerID:         buyerID,
		SellerID:        sellerID,
		ListingID:       listingID,
		TotalPrice:      total,
	}
}

// EventType returns the event type
func (e *OrderPlacedEvent) EventType() string {
	return EventTypeOrderPlaced
}

// OrderCancelledEvent is raised when an order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID  uuid.UUID `json:"order_id"`
	BuyerID  uuid.UUID `json:"buyer_id"`
	SellerID uuid.UUID `json:"seller_id"`
}

// NewOrderCancelledEvent creates an order cancelled event
func NewOrderCancelledEvent(orderID, buyerID, sellerID uuid.UUID) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCancelled, AggregateTypeOrder, orderID),
		OrderID:         orderID,
		BuyerID:         buyerID,
		SellerID:        sellerID,
	}
}

// EventType returns the event type
func (e *OrderCancelledEvent) EventType() string {
	return EventTypeOrderCancelled
}
