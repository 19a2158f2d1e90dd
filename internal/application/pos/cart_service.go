package pos

import (
	"context"

	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartService manages the shared in-store cart
type CartService struct {
	cartRepo pos.CartRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo pos.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// Add appends a line to the POS cart
func (s *CartService) Add(ctx context.Context, req CartItemRequest) (shared.InsertResult, error) {
	item := &pos.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Quantity:  req.Quantity,
	}
	if err := item.Validate(); err != nil {
		return shared.InsertResult{}, err
	}
	return s.cartRepo.Create(ctx, item)
}

// List returns every POS cart line
func (s *CartService) List(ctx context.Context) ([]pos.CartItem, error) {
	return s.cartRepo.FindAll(ctx, shared.Filter{})
}

// UpdateQuantity changes one line's quantity
func (s *CartService) UpdateQuantity(ctx context.Context, id string, req CartUpdateRequest) (shared.UpdateResult, error) {
	if req.Quantity <= 0 {
		return shared.UpdateResult{}, shared.InvalidInputError("Quantity must be positive")
	}
	return shared.Modify[pos.CartItem](ctx, s.cartRepo, id, shared.Changes{"quantity": req.Quantity})
}

// Remove deletes one line
func (s *CartService) Remove(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[pos.CartItem](ctx, s.cartRepo, id)
}

// Clear empties the POS cart
func (s *CartService) Clear(ctx context.Context) (shared.DeleteResult, error) {
	return s.cartRepo.Clear(ctx)
}
