package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository implements trade.CartRepository
type CartRepository struct {
	collection[trade.CartItem]
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{newCollection[trade.CartItem](db, CollCart, "Cart item")}
}

// DeleteByEmail removes every cart line of one customer
func (r *CartRepository) DeleteByEmail(ctx context.Context, email string) (shared.DeleteResult, error) {
	return r.deleteMany(ctx, bson.M{"email": email})
}

// OrderRepository implements trade.OrderRepository
type OrderRepository struct {
	collection[trade.Order]
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{newCollection[trade.Order](db, CollOrders, "Order").sorted(newestFirst)}
}

// FindDelivered lists orders whose status is exactly delivered
func (r *OrderRepository) FindDelivered(ctx context.Context) ([]trade.Order, error) {
	return r.find(ctx, bson.M{"status": string(trade.StatusDelivered)})
}
