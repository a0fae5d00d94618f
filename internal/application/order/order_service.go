package order

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/marketplace/backend/internal/domain/order"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/telemetry"
)

// OrderService handles order queries and fulfillment updates
type OrderService struct {
	orderRepo      order.Repository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves an order. Only the buyer and the seller may view it.
func (s *OrderService) GetByID(ctx context.Context, callerID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsBuyer(callerID) && !o.IsSeller(callerID) {
		return nil, shared.ErrForbidden
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// ListPurchases retrieves the caller's purchases, newest first
func (s *OrderService) ListPurchases(ctx context.Context, buyerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	page, err := s.orderRepo.FindByBuyer(ctx, buyerID, s.toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}
	return ToOrderResponses(page.Items), page.Total, nil
}

// ListSales retrieves orders for the caller's listings, newest first
func (s *OrderService) ListSales(ctx context.Context, sellerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	page, err := s.orderRepo.FindBySeller(ctx, sellerID, s.toDomainFilter(filter))
	if err != nil {
		return nil, 0, err
	}
	return ToOrderResponses(page.Items), page.Total, nil
}

// UpdateStatus advances an order along the fulfillment path.
// Only the seller may change an order's status; buyers follow along.
func (s *OrderService) UpdateStatus(ctx context.Context, callerID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status",
		attribute.String("order_id", orderID.String()),
		attribute.String("target_status", req.Status))
	defer span.End()

	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsSeller(callerID) {
		return nil, shared.ErrUnauthorized
	}

	if err := o.UpdateStatus(order.OrderStatus(req.Status)); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

func (s *OrderService) toDomainFilter(filter OrderListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}

func (s *OrderService) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	o.ClearDomainEvents()
}
