package trade

import (
	"context"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus represents the status of an online order.
// Any non-empty value is accepted; only StatusDelivered carries behavior.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusFailed     OrderStatus = "failed"
)

// IsFulfillment reports whether entering this status fulfills the order
func (s OrderStatus) IsFulfillment() bool {
	return s == StatusDelivered
}

// Order types
const (
	OrderTypeOnline = "online"
	OrderTypePOS    = "pos"
)

// LineItem is one product line of an order or cart snapshot
type LineItem struct {
	ProductID string        `bson:"productId" json:"productId"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	Size      string        `bson:"size,omitempty" json:"size,omitempty"`
	Color     string        `bson:"color,omitempty" json:"color,omitempty"`
	Price     shared.Amount `bson:"price" json:"price"`
	Quantity  int           `bson:"quantity" json:"quantity"`
}

// ValidateLines checks that every line references a well-formed product id
// with a positive quantity
func ValidateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return shared.InvalidInputError("Order must contain at least one item")
	}
	for _, l := range lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return shared.InvalidInputError("Every item needs a productId")
		}
		if !shared.IsValidID(l.ProductID) {
			return shared.NewDomainError(shared.ErrInvalidID.Code, "Invalid productId format: "+l.ProductID)
		}
		if l.Quantity <= 0 {
			return shared.InvalidInputError("Item quantity must be positive")
		}
	}
	return nil
}

// Order is a customer order placed through the storefront
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	CartItems     []LineItem         `bson:"cartItems" json:"cartItems"`
	Status        OrderStatus        `bson:"status" json:"status"`
	Total         shared.Amount      `bson:"total" json:"total"`
	CouponCode    string             `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Discount      shared.Amount      `bson:"discount,omitempty" json:"discount,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	OrderType     string             `bson:"orderType" json:"orderType"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewOrder creates a pending online order. Placement never touches stock.
func NewOrder(email string, lines []LineItem, total shared.Amount, now time.Time) (*Order, error) {
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, shared.InvalidInputError("Order total cannot be negative")
	}
	return &Order{
		Email:     strings.TrimSpace(email),
		CartItems: lines,
		Status:    StatusPending,
		Total:     total,
		OrderType: OrderTypeOnline,
		CreatedAt: now,
	}, nil
}

// OrderQuery narrows an order listing
type OrderQuery struct {
	Email  string
	Status string
}

// OrderRepository persists online orders
type OrderRepository interface {
	shared.Repository[Order]
	// FindDelivered returns every order whose status is exactly delivered
	FindDelivered(ctx context.Context) ([]Order, error)
}
