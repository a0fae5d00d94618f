package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/shared"
)

// ListingStatus represents the availability state of a listing
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "Available"
	ListingStatusPending   ListingStatus = "Pending"
	ListingStatusSold      ListingStatus = "Sold"
)

// IsValid checks if the status is a valid ListingStatus
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusAvailable, ListingStatusPending, ListingStatusSold:
		return true
	}
	return false
}

// String returns the string representation of ListingStatus
func (s ListingStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Sold is terminal for purchase purposes; checkout may jump Available -> Sold
// directly. Admin force-edits bypass this check.
func (s ListingStatus) CanTransitionTo(target ListingStatus) bool {
	switch s {
	case ListingStatusAvailable:
		return target == ListingStatusPending || target == ListingStatusSold
	case ListingStatusPending:
		return target == ListingStatusSold
	case ListingStatusSold:
		return false
	}
	return false
}

// Condition represents the physical condition of a listed item
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionLikeNew    Condition = "Like New"
	ConditionGood       Condition = "Good"
	ConditionFair       Condition = "Fair"
	ConditionAcceptable Condition = "Acceptable"
)

// IsValid checks if the condition is a valid Condition
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionAcceptable:
		return true
	}
	return false
}

// String returns the string representation of Condition
func (c Condition) String() string {
	return string(c)
}

// Listing represents a sellable item aggregate root.
// It is owned by its seller; the checkout process may only flip its status.
type Listing struct {
	shared.BaseAggregateRoot
	Title       string
	Author      string
	Category    string
	Condition   Condition
	Price       decimal.Decimal
	Description string
	ImageURLs   []string
	SellerID    uuid.UUID
	Status      ListingStatus
}

// NewListing creates a new listing owned by the given seller
func NewListing(sellerID uuid.UUID, title, author, category string, condition Condition, price decimal.Decimal) (*Listing, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if author == "" {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author cannot be empty")
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if !condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Condition must be one of: New, Like New, Good, Fair, Acceptable")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	listing := &Listing{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Author:            author,
		Category:          category,
		Condition:         condition,
		Price:             price,
		ImageURLs:         make([]string, 0),
		SellerID:          sellerID,
		Status:            ListingStatusAvailable,
	}

	listing.AddDomainEvent(NewListingCreatedEvent(listing))

	return listing, nil
}

// IsAvailable returns true if the listing can be purchased
func (l *Listing) IsAvailable() bool {
	return l.Status == ListingStatusAvailable
}

// IsOwnedBy returns true if the given user is the seller
func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.SellerID == userID
}

// UpdateDetails updates the mutable listing fields. Zero values leave the
// corresponding field unchanged, matching partial-update semantics.
func (l *Listing) UpdateDetails(title, author, category string, condition Condition, description *string) error {
	if title != "" {
		if len(title) > 200 {
			return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
		}
		l.Title = title
	}
	if author != "" {
		l.Author = author
	}
	if category != "" {
		l.Category = category
	}
	if condition != "" {
		if !condition.IsValid() {
			return shared.NewDomainError("INVALID_CONDITION", "Condition must be one of: New, Like New, Good, Fair, Acceptable")
		}
		l.Condition = condition
	}
	if description != nil {
		l.Description = *description
	}
	l.Touch()
	return nil
}

// ChangePrice sets a new price for the listing
func (l *Listing) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	l.Price = price
	l.Touch()
	return nil
}

// SetImageURLs replaces the listing images
func (l *Listing) SetImageURLs(urls []string) {
	l.ImageURLs = urls
	l.Touch()
}

// Reserve transitions the listing to Pending
func (l *Listing) Reserve() error {
	return l.transition(ListingStatusPending)
}

// MarkSold transitions the listing to Sold
func (l *Listing) MarkSold() error {
	if err := l.transition(ListingStatusSold); err != nil {
		return err
	}
	l.AddDomainEvent(NewListingSoldEvent(l))
	return nil
}

// ForceStatus sets any valid status without transition checks.
// Reserved for administrative moderation; there is no automatic path
// back from Sold to Available.
func (l *Listing) ForceStatus(status ListingStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: Available, Pending, Sold")
	}
	l.Status = status
	l.Touch()
	return nil
}

func (l *Listing) transition(target ListingStatus) error {
	if !l.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Listing cannot transition from "+l.Status.String()+" to "+target.String())
	}
	l.Status = target
	l.Touch()
	return nil
}
