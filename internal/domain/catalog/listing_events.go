package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeListing = "Listing"

// Event type constants
const (
	EventTypeListingCreated = "ListingCreated"
	EventTypeListingSold    = "ListingSold"
)

// ListingCreatedEvent is raised when a new listing is posted
type ListingCreatedEvent struct {
	shared.BaseDomainEvent
	ListingID uuid.UUID       `json:"listing_id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	SellerID  uuid.UUID       `json:"seller_id"`
}

// NewListingCreatedEvent creates a new ListingCreatedEvent
func NewListingCreatedEvent(listing *Listing) *ListingCreatedEvent {
	return &ListingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingCreated, AggregateTypeListing, listing.ID),
		ListingID:       listing.ID,
		Title:           listing.Title,
		Category:        listing.Category,
		Price:           listing.Price,
		SellerID:        listing.SellerID,
	}
}

// EventType returns the event type name
func (e *ListingCreatedEvent) EventType() string {
	return EventTypeListingCreated
}

// ListingSoldEvent is raised when a listing is purchased through checkout
type ListingSoldEvent struct {
	shared.BaseDomainEvent
	ListingID uuid.UUID       `json:"listing_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	SellerID  uuid.UUID       `json:"seller_id"`
}

// NewListingSoldEvent creates a new ListingSoldEvent
func NewListingSoldEvent(listing *Listing) *ListingSoldEvent {
	return &ListingSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingSold, AggregateTypeListing, listing.ID),
		ListingID:       listing.ID,
		Title:           listing.Title,
		Price:           listing.Price,
		SellerID:        listing.SellerID,
	}
}

// EventType returns the event type name
func (e *ListingSoldEvent) EventType() string {
	return EventTypeListingSold
}
