package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/identity"
	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
)

// ActivityLogHandler records marketplace activity as structured log entries
type ActivityLogHandler struct {
	logger *zap.Logger
}

// NewActivityLogHandler creates a handler that logs marketplace events
func NewActivityLogHandler(logger *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{logger: logger.Named("activity")}
}

// Handle implements shared.EventHandler
func (h *ActivityLogHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", evt.EventID().String()),
		zap.String("aggregate_type", evt.AggregateType()),
		zap.String("aggregate_id", evt.AggregateID().String()),
	}

	switch e := evt.(type) {
	case *order.OrderPlacedEvent:
		fields = append(fields,
			zap.String("buyer_id", e.BuyerID.String()),
			zap.String("seller_id", e.SellerID.String()),
			zap.String("total", e.TotalPrice.String()),
		)
	case *catalog.ListingSoldEvent:
		fields = append(fields, zap.String("title", e.Title))
	}

	h.logger.Info(evt.EventType(), fields...)
	return nil
}

// EventTypes returns the event types this handler listens for
func (h *ActivityLogHandler) EventTypes() []string {
	return []string{
		catalog.EventTypeListingCreated,
		catalog.EventTypeListingSold,
		order.EventTypeOrderPlaced,
		order.EventTypeOrderCancelled,
		identity.EventTypeUserRegistered,
		identity.EventTypeUserSuspended,
	}
}

var _ shared.EventHandler = (*ActivityLogHandler)(nil)
