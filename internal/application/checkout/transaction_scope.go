package checkout

import (
	"context"

	"github.com/marketplace/backend/internal/domain/cart"
	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories a
// checkout touches. All repository operations inside Execute are part of
// the same database transaction and commit or roll back atomically, so a
// multi-item purchase either fully succeeds or leaves no trace.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the checkout repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// ListingRepo returns the listing repository scoped to the current transaction
	ListingRepo() catalog.ListingRepository
	// CartRepo returns the cart repository scoped to the current transaction
	CartRepo() cart.Repository
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() order.Repository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	listingRepo catalog.ListingRepository
	cartRepo    cart.Repository
	orderRepo   order.Repository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	listingRepo catalog.ListingRepository,
	cartRepo cart.Repository,
	orderRepo order.Repository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		listingRepo: listingRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ListingRepo returns the listing repository.
func (s *NoOpTransactionScope) ListingRepo() catalog.ListingRepository {
	return s.listingRepo
}

// CartRepo returns the cart repository.
func (s *NoOpTransactionScope) CartRepo() cart.Repository {
	return s.cartRepo
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() order.Repository {
	return s.orderRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
