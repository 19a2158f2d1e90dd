package pos

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/inventory"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
)

// SalePlacer records a POS sale together with its stock and cart effects
type SalePlacer interface {
	PlacePOSOrder(ctx context.Context, order *pos.Order) (*inventory.Report, error)
}

// OrderService handles POS sales
type OrderService struct {
	orderRepo pos.OrderRepository
	placer    SalePlacer
	now       func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo pos.OrderRepository, placer SalePlacer) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		placer:    placer,
		now:       time.Now,
	}
}

// Place records a paid sale, decrements stock for every line and clears the POS cart
func (s *OrderService) Place(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	order, err := pos.NewOrder(req.CartItems, req.Total, s.now())
	if err != nil {
		return nil, err
	}
	order.CustomerName = req.CustomerName
	order.CustomerPhone = req.CustomerPhone
	order.PaymentMethod = req.PaymentMethod

	report, err := s.placer.PlacePOSOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	resp := &OrderResponse{Acknowledged: true, Steps: report.Steps}
	for _, step := range report.Steps {
		if step.Name == inventory.StepInsertOrder {
			resp.InsertedID = step.Target
		}
	}
	return resp, nil
}

// List returns POS orders newest first
func (s *OrderService) List(ctx context.Context) ([]pos.Order, error) {
	return s.orderRepo.FindAll(ctx, shared.Filter{})
}

// GetByID returns one POS order
func (s *OrderService) GetByID(ctx context.Context, id string) (*pos.Order, error) {
	return shared.Get[pos.Order](ctx, s.orderRepo, id, "POS order")
}
