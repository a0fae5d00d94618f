package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/shared"
)

// Repository defines the persistence contract for orders
type Repository interface {
	// FindByID returns the order with the given ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByBuyer returns the buyer's orders, newest first
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)

	// FindBySeller returns orders for the seller's listings, newest first
	FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (*shared.Paginated[Order], error)

	// FindAll returns orders matching the filter; recognizes the
	// "status" filter key
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[Order], error)

	// Count returns the number of orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists the order
	Save(ctx context.Context, o *Order) error
}
