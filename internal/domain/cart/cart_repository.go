package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for carts
type Repository interface {
	// FindByUser returns the user's cart, or nil when the user has none yet
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// FindByID returns the cart with the given ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// Save persists the cart and its items, replacing the stored item set
	Save(ctx context.Context, c *Cart) error

	// Delete removes the cart and its items
	Delete(ctx context.Context, id uuid.UUID) error
}
