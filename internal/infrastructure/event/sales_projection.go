package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
)

// SalesProjectionHandler maintains the per-seller sale counter shown on
// profiles. It runs after commit, so a lost update here never affects the
// checkout itself.
type SalesProjectionHandler struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewSalesProjectionHandler creates a handler that updates seller sale counters
func NewSalesProjectionHandler(userRepo identity.UserRepository, logger *zap.Logger) *SalesProjectionHandler {
	return &SalesProjectionHandler{
		userRepo: userRepo,
		logger:   logger.Named("sales_projection"),
	}
}

// Handle implements shared.EventHandler
func (h *SalesProjectionHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	placed, ok := evt.(*order.OrderPlacedEvent)
	if !ok {
		return nil
	}

	if err := h.userRepo.IncrementTotalSales(ctx, placed.SellerID); err != nil {
		h.logger.Error("Failed to update seller sale counter",
			zap.String("seller_id", placed.SellerID.String()),
			zap.String("order_id", placed.OrderID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// EventTypes returns the event types this handler listens for
func (h *SalesProjectionHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced}
}

var _ shared.EventHandler = (*SalesProjectionHandler)(nil)
