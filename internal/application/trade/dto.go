package trade

import (
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// CartItemRequest adds a line to a customer's cart
type CartItemRequest struct {
	Email     string        `json:"email" binding:"required,email"`
	ProductID string        `json:"productId" binding:"required,objectid"`
	Name      string        `json:"name" binding:"max=200"`
	Image     string        `json:"image" binding:"max=2000"`
	Size      string        `json:"size" binding:"max=50"`
	Color     string        `json:"color" binding:"max=50"`
	Price     shared.Amount `json:"price"`
	Quantity  int           `json:"quantity" binding:"required,min=1"`
	Selected  bool          `json:"selected"`
}

// CartUpdateRequest changes quantity and/or selection of a cart line
type CartUpdateRequest struct {
	Quantity *int  `json:"quantity" binding:"omitempty,min=1"`
	Selected *bool `json:"selected"`
}

// CartFilter carries the cart list query parameters
type CartFilter struct {
	Email string `form:"email"`
}

// OrderRequest places an online order
type OrderRequest struct {
	Email      string           `json:"email" binding:"required,email"`
	Name       string           `json:"name" binding:"max=200"`
	Phone      string           `json:"phone" binding:"max=50"`
	Address    string           `json:"address" binding:"max=500"`
	CartItems  []trade.LineItem `json:"cartItems" binding:"required,min=1"`
	Total      shared.Amount    `json:"total"`
	CouponCode string           `json:"couponCode" binding:"max=50"`
	Discount   shared.Amount    `json:"discount"`
}

// OrderFilter carries the order list query parameters
type OrderFilter struct {
	Email  string `form:"email"`
	Status string `form:"status"`
}

// OrderStatusRequest moves an order to a new status
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}
