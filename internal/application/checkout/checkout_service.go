package checkout

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/domain/shared/valueobject"
	"github.com/marketplace/backend/internal/infrastructure/telemetry"
)

// CheckoutService converts a cart into orders.
//
// The whole purchase runs inside one transaction: every listing in the
// cart is atomically flipped from Available to Sold, one order is
// recorded per cart item, and the cart is emptied. If any listing was
// bought or withdrawn in the meantime the transaction rolls back and
// nothing is sold.
type CheckoutService struct {
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(txScope TransactionScope) *CheckoutService {
	return &CheckoutService{
		txScope: txScope,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout purchases everything in the buyer's cart
func (s *CheckoutService) Checkout(ctx context.Context, buyerID uuid.UUID, req CheckoutRequest) (*CheckoutResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "purchase",
		attribute.String("buyer_id", buyerID.String()))
	defer span.End()

	address, err := valueobject.NewShippingAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.Country,
	)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var orders []*order.Order
	var events []shared.DomainEvent

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.CartRepo().FindByUser(ctx, buyerID)
		if err != nil {
			return err
		}
		if c == nil || c.IsEmpty() {
			return shared.ErrEmptyCart
		}

		for _, item := range c.Items {
			listing, err := repos.ListingRepo().FindByID(ctx, item.ListingID)
			if err != nil {
				if isNotFound(err) {
					return unavailable(item.Title)
				}
				return err
			}

			// The compare-and-set is the only guard against two buyers
			// racing on the same listing; exactly one wins.
			won, err := repos.ListingRepo().TransitionStatus(ctx, listing.ID, catalog.ListingStatusAvailable, catalog.ListingStatusSold)
			if err != nil {
				return err
			}
			if !won {
				return unavailable(listing.Title)
			}

			o, err := order.NewOrder(buyerID, listing.SellerID, order.ListingSnapshot{
				ListingID: listing.ID,
				Title:     listing.Title,
				Author:    listing.Author,
				Category:  listing.Category,
				Price:     listing.Price,
				Quantity:  item.Quantity,
			}, address)
			if err != nil {
				return err
			}

			if err := repos.OrderRepo().Save(ctx, o); err != nil {
				return err
			}

			listing.Status = catalog.ListingStatusSold
			events = append(events, catalog.NewListingSoldEvent(listing))
			events = append(events, o.GetDomainEvents()...)
			o.ClearDomainEvents()
			orders = append(orders, o)
		}

		c.Clear()
		return repos.CartRepo().Save(ctx, c)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("orders_created", len(orders)))

	// Events go out only after the transaction committed
	if s.eventPublisher != nil && len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}

	response := ToCheckoutResponse(orders)
	return &response, nil
}

func unavailable(title string) error {
	return shared.NewDomainError("LISTING_UNAVAILABLE", "Sorry, "+title+" is no longer available")
}

func isNotFound(err error) bool {
	domainErr, ok := err.(*shared.DomainError)
	return ok && domainErr.Code == "NOT_FOUND"
}
