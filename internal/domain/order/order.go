package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks if transitioning to the target status is allowed.
// Fulfillment moves strictly forward; cancellation is allowed from any
// non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == StatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case StatusPending:
		return target == StatusProcessing
	case StatusProcessing:
		return target == StatusShipped
	case StatusShipped:
		return target == StatusDelivered
	default:
		return false
	}
}

// ListingSnapshot captures the listing's state at purchase time.
// Later edits or deletion of the listing never alter past orders.
type ListingSnapshot struct {
	ListingID uuid.UUID
	Title     string
	Author    string
	Category  string
	Price     decimal.Decimal
	Quantity  int
}

// Order represents a completed purchase of a single listing.
// A multi-item checkout produces one order per cart item.
type Order struct {
	shared.BaseAggregateRoot
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	Snapshot        ListingSnapshot
	ShippingAddress valueobject.ShippingAddress
	TotalPrice      decimal.Decimal
	Status          OrderStatus
}

// NewOrder records the purchase of a listing by a buyer
func NewOrder(buyerID, sellerID uuid.UUID, snapshot ListingSnapshot, address valueobject.ShippingAddress) (*Order, error) {
	if buyerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUYER", "Buyer ID cannot be empty")
	}
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if buyerID == sellerID {
		return nil, shared.NewDomainError("SELF_PURCHASE", "You cannot purchase your own listing")
	}
	if snapshot.ListingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Listing ID cannot be empty")
	}
	if snapshot.Title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if snapshot.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if snapshot.Price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if address.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address is required")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BuyerID:           buyerID,
		SellerID:          sellerID,
		Snapshot:          snapshot,
		ShippingAddress:   address,
		TotalPrice:        snapshot.Price.Mul(decimal.NewFromInt(int64(snapshot.Quantity))),
		Status:            StatusPending,
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o.ID, o.BuyerID, o.SellerID, snapshot.ListingID, o.TotalPrice))
	return o, nil
}

// UpdateStatus moves the order along the fulfillment state machine
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot change order status from "+o.Status.String()+" to "+target.String())
	}

	o.Status = target
	o.Touch()

	if target == StatusCancelled {
		o.AddDomainEvent(NewOrderCancelledEvent(o.ID, o.BuyerID, o.SellerID))
	}
	return nil
}

// IsBuyer reports whether the user placed this order
func (o *Order) IsBuyer(userID uuid.UUID) bool {
	return o.BuyerID == userID
}

// IsSeller reports whether the user sold the listing in this order
func (o *Order) IsSeller(userID uuid.UUID) bool {
	return o.SellerID == userID
}
