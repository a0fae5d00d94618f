package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/cart"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
)

// CartService handles cart business operations
type CartService struct {
	cartRepo    cart.Repository
	listingRepo catalog.ListingRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, listingRepo catalog.ListingRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
	}
}

// Get retrieves the user's cart. A user with no cart yet gets an
// empty one, which is not persisted until the first add.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem puts an available listing into the user's cart.
// The listing's title and price are captured at add time.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsAvailable() {
		return nil, shared.NewDomainError("LISTING_UNAVAILABLE", "Sorry, "+listing.Title+" is no longer available")
	}
	if listing.IsOwnedBy(userID) {
		return nil, shared.NewDomainError("SELF_PURCHASE", "You cannot purchase your own listing")
	}

	c, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if _, err := c.AddItem(listing.ID, listing.Title, listing.Price, quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// UpdateItem changes an item's quantity. A quantity of zero removes it.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	c, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}

	if err := c.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem removes an item from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, shared.ErrNotFound
	}

	c.RemoveItem(itemID)

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// Clear empties the user's cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	c, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}

	c.Clear()
	return s.cartRepo.Save(ctx, c)
}

func (s *CartService) findOrCreate(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	return cart.NewCart(userID)
}
