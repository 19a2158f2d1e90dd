package trade

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/inventory"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// StatusTransitioner applies an order status change and any stock effect it carries
type StatusTransitioner interface {
	TransitionOrder(ctx context.Context, orderID string, status trade.OrderStatus) (*inventory.Report, error)
}

// OrderService handles online order operations
type OrderService struct {
	orderRepo    trade.OrderRepository
	transitioner StatusTransitioner
	now          func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, transitioner StatusTransitioner) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		transitioner: transitioner,
		now:          time.Now,
	}
}

// Place stores a new pending order. Stock is not touched.
func (s *OrderService) Place(ctx context.Context, req OrderRequest) (shared.InsertResult, error) {
	order, err := trade.NewOrder(req.Email, req.CartItems, req.Total, s.now())
	if err != nil {
		return shared.InsertResult{}, err
	}
	order.Name = req.Name
	order.Phone = req.Phone
	order.Address = req.Address
	order.CouponCode = req.CouponCode
	order.Discount = req.Discount
	return s.orderRepo.Create(ctx, order)
}

// List returns orders newest first, optionally by customer and status
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]trade.Order, error) {
	return s.orderRepo.FindAll(ctx, shared.Filter{}.
		Set("email", filter.Email).
		Set("status", filter.Status))
}

// GetByID returns one order
func (s *OrderService) GetByID(ctx context.Context, id string) (*trade.Order, error) {
	return shared.Get[trade.Order](ctx, s.orderRepo, id, "Order")
}

// UpdateStatus sets the order status; entering delivered decrements stock
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req OrderStatusRequest) (*inventory.Report, error) {
	return s.transitioner.TransitionOrder(ctx, id, trade.OrderStatus(req.Status))
}

// Delete removes an order. Stock already decremented stays decremented.
func (s *OrderService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[trade.Order](ctx, s.orderRepo, id)
}
