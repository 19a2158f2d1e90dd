package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// POSCartRepository implements pos.CartRepository
type POSCartRepository struct {
	collection[pos.CartItem]
}

// NewPOSCartRepository creates a new POS cart repository
func NewPOSCartRepository(db *mongo.Database) *POSCartRepository {
	return &POSCartRepository{newCollection[pos.CartItem](db, CollPOSCart, "POS cart item")}
}

// Clear empties the whole POS cart
func (r *POSCartRepository) Clear(ctx context.Context) (shared.DeleteResult, error) {
	return r.deleteMany(ctx, bson.M{})
}

// POSOrderRepository implements pos.OrderRepository
type POSOrderRepository struct {
	collection[pos.Order]
}

// NewPOSOrderRepository creates a new POS order repository
func NewPOSOrderRepository(db *mongo.Database) *POSOrderRepository {
	return &POSOrderRepository{newCollection[pos.Order](db, CollPOSOrders, "POS order").sorted(newestFirst)}
}
