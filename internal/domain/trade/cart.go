package trade

import (
	"context"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a customer's cart.
// Adding the same product twice creates two records.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Price     shared.Amount      `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Selected  bool               `bson:"selected" json:"selected"`
}

// Validate checks the cart line before it is stored
func (c *CartItem) Validate() error {
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" {
		return shared.InvalidInputError("Cart item email is required")
	}
	if !shared.IsValidID(c.ProductID) {
		return shared.NewDomainError(shared.ErrInvalidID.Code, "Invalid product id format")
	}
	if c.Quantity <= 0 {
		return shared.InvalidInputError("Quantity must be positive")
	}
	return nil
}

// CartRepository persists customer cart lines
type CartRepository interface {
	shared.Repository[CartItem]
	// DeleteByEmail removes every line of one customer's cart
	DeleteByEmail(ctx context.Context, email string) (shared.DeleteResult, error)
}
