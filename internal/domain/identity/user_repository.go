package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/shared"
)

// UserRepository defines the persistence contract for users
type UserRepository interface {
	// FindByID returns the user with the given ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns the user with the given email, case insensitive
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether an account already uses the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll returns users matching the filter; recognizes the "role"
	// and "status" filter keys, Search matches name and email
	FindAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[User], error)

	// Count returns the number of users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists the user
	Save(ctx context.Context, u *User) error

	// IncrementTotalSales bumps the seller's completed-sale counter
	IncrementTotalSales(ctx context.Context, sellerID uuid.UUID) error

	// Delete removes the user
	Delete(ctx context.Context, id uuid.UUID) error
}
