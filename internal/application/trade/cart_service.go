package trade

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// CartService handles customer cart operations
type CartService struct {
	cartRepo trade.CartRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo trade.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// Add stores a new cart line. Duplicates are not merged.
func (s *CartService) Add(ctx context.Context, req CartItemRequest) (shared.InsertResult, error) {
	item := &trade.CartItem{
		Email:     req.Email,
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Size:      req.Size,
		Color:     req.Color,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Selected:  req.Selected,
	}
	if err := item.Validate(); err != nil {
		return shared.InsertResult{}, err
	}
	return s.cartRepo.Create(ctx, item)
}

// List returns cart lines, optionally for one customer
func (s *CartService) List(ctx context.Context, filter CartFilter) ([]trade.CartItem, error) {
	return s.cartRepo.FindAll(ctx, shared.Filter{}.Set("email", filter.Email))
}

// Update changes quantity and/or selection
func (s *CartService) Update(ctx context.Context, id string, req CartUpdateRequest) (shared.UpdateResult, error) {
	changes := shared.Changes{}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return shared.UpdateResult{}, shared.InvalidInputError("Quantity must be positive")
		}
		changes["quantity"] = *req.Quantity
	}
	if req.Selected != nil {
		changes["selected"] = *req.Selected
	}
	if len(changes) == 0 {
		return shared.UpdateResult{}, shared.InvalidInputError("Nothing to update")
	}
	return shared.Modify[trade.CartItem](ctx, s.cartRepo, id, changes)
}

// Remove deletes one cart line
func (s *CartService) Remove(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[trade.CartItem](ctx, s.cartRepo, id)
}

// Clear deletes every line of one customer's cart
func (s *CartService) Clear(ctx context.Context, email string) (shared.DeleteResult, error) {
	if email == "" {
		return shared.DeleteResult{}, shared.InvalidInputError("Email query parameter is required")
	}
	return s.cartRepo.DeleteByEmail(ctx, email)
}
