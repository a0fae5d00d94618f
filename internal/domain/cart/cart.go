package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketplace/backend/internal/domain/shared"
)

// CartItem represents a single listing placed in a cart.
// Title and Price are denormalized from the listing at add time so the cart
// can be displayed, and unavailability errors reported, without a join; the
// checkout process always re-reads the listing itself.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ListingID uuid.UUID
	Title     string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCartItem creates a new cart item
func NewCartItem(cartID, listingID uuid.UUID, title string, price decimal.Decimal, quantity int) (*CartItem, error) {
	if listingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING", "Listing ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	return &CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ListingID: listingID,
		Title:     title,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Cart represents a user's pending set of listings to purchase.
// Each user owns exactly one cart, created lazily on first add and cleared
// (never deleted) after a successful checkout.
type Cart struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Items  []CartItem
}

// NewCart creates an empty cart for the given user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             make([]CartItem, 0),
	}, nil
}

// IsEmpty returns true if the cart holds no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ContainsListing returns true if the listing is already in the cart
func (c *Cart) ContainsListing(listingID uuid.UUID) bool {
	for _, item := range c.Items {
		if item.ListingID == listingID {
			return true
		}
	}
	return false
}

// AddItem adds a listing to the cart. Each listing may appear at most once;
// adding it again is a conflict rather than a quantity merge.
func (c *Cart) AddItem(listingID uuid.UUID, title string, price decimal.Decimal, quantity int) (*CartItem, error) {
	if c.ContainsListing(listingID) {
		return nil, shared.ErrDuplicateItem
	}

	item, err := NewCartItem(c.ID, listingID, title, price, quantity)
	if err != nil {
		return nil, err
	}

	c.Items = append(c.Items, *item)
	c.Touch()
	return item, nil
}

// UpdateItemQuantity sets the quantity of an existing item.
// A quantity of zero or less removes the item.
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
				c.Items[i].UpdatedAt = time.Now()
			}
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Item not found in cart")
}

// RemoveItem removes an item from the cart. Removing an absent item is a no-op.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Touch()
			return
		}
	}
}

// Clear removes all items. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	if len(c.Items) == 0 {
		return
	}
	c.Items = c.Items[:0]
	c.Touch()
}

// Subtotal returns the sum of price x quantity over all items.
// Display only; the checkout process recomputes totals from live listings.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
