package pos

import (
	"github.com/storefront/backend/internal/domain/inventory"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// CartItemRequest adds a line to the in-store cart
type CartItemRequest struct {
	ProductID string        `json:"productId" binding:"required,objectid"`
	Name      string        `json:"name" binding:"max=200"`
	Image     string        `json:"image" binding:"max=2000"`
	Price     shared.Amount `json:"price"`
	Quantity  int           `json:"quantity" binding:"required,min=1"`
}

// CartUpdateRequest changes the quantity of a POS cart line
type CartUpdateRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// OrderRequest records an in-store sale
type OrderRequest struct {
	CartItems     []trade.LineItem `json:"cartItems" binding:"required,min=1"`
	Total         shared.Amount    `json:"total"`
	CustomerName  string           `json:"customerName" binding:"max=200"`
	CustomerPhone string           `json:"customerPhone" binding:"max=50"`
	PaymentMethod string           `json:"paymentMethod" binding:"max=50"`
}

// OrderResponse is the insert result plus the step report of the sale
type OrderResponse struct {
	Acknowledged bool             `json:"acknowledged"`
	InsertedID   string           `json:"insertedId"`
	Steps        []inventory.Step `json:"steps"`
}
