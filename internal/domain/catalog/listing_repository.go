package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/shared"
)

// ListingRepository defines the interface for listing persistence
type ListingRepository interface {
	// FindByID finds a listing by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)

	// FindAll finds listings matching the filter. The "status", "category",
	// "price_min" and "price_max" filter keys are recognized; Search matches
	// against the title.
	FindAll(ctx context.Context, filter shared.Filter) ([]Listing, error)

	// FindBySeller finds all listings posted by a seller
	FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]Listing, error)

	// Count counts listings matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Categories returns the distinct categories in use
	Categories(ctx context.Context) ([]string, error)

	// Save creates or updates a listing
	Save(ctx context.Context, listing *Listing) error

	// TransitionStatus atomically moves a listing from the expected status to
	// the target status. It returns false without error when the listing does
	// not exist or is no longer in the expected status, so concurrent buyers
	// racing on one listing resolve to a single winner.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to ListingStatus) (bool, error)

	// Delete removes a listing
	Delete(ctx context.Context, id uuid.UUID) error
}
