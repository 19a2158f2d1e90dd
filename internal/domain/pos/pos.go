package pos

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusPaid is the only status a POS order ever has
const StatusPaid = "paid"

// CartItem is a line in the shared in-store cart
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     shared.Amount      `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Validate checks the POS cart line before it is stored
func (c *CartItem) Validate() error {
	if !shared.IsValidID(c.ProductID) {
		return shared.NewDomainError(shared.ErrInvalidID.Code, "Invalid product id format")
	}
	if c.Quantity <= 0 {
		return shared.InvalidInputError("Quantity must be positive")
	}
	if c.Price < 0 {
		return shared.InvalidInputError("Price cannot be negative")
	}
	return nil
}

// Order is an in-store sale. It is paid at creation and fulfills immediately.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CartItems     []trade.LineItem   `bson:"cartItems" json:"cartItems"`
	Total         shared.Amount      `bson:"total" json:"total"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string             `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Status        string             `bson:"status" json:"status"`
	OrderType     string             `bson:"orderType" json:"orderType"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewOrder creates a paid POS order stamped with now
func NewOrder(lines []trade.LineItem, total shared.Amount, now time.Time) (*Order, error) {
	if err := trade.ValidateLines(lines); err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, shared.InvalidInputError("Order total cannot be negative")
	}
	return &Order{
		CartItems: lines,
		Total:     total,
		Status:    StatusPaid,
		OrderType: trade.OrderTypePOS,
		CreatedAt: now,
	}, nil
}

// CartRepository persists the in-store cart
type CartRepository interface {
	shared.Repository[CartItem]
	// Clear removes every line in the cart regardless of which sale it belongs to
	Clear(ctx context.Context) (shared.DeleteResult, error)
}

// OrderRepository persists POS orders
type OrderRepository interface {
	shared.Repository[Order]
}
