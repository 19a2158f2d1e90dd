package handler

import (
	"github.com/gin-gonic/gin"
	posapp "github.com/storefront/backend/internal/application/pos"
)

// POSHandler handles the in-store cart and POS orders
type POSHandler struct {
	BaseHandler
	cartService  *posapp.CartService
	orderService *posapp.OrderService
}

// NewPOSHandler creates a new POSHandler
func NewPOSHandler(cartService *posapp.CartService, orderService *posapp.OrderService) *POSHandler {
	return &POSHandler{cartService: cartService, orderService: orderService}
}

// AddToCart handles POST /pos/cart
func (h *POSHandler) AddToCart(c *gin.Context) {
	var req posapp.CartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.cartService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListCart handles GET /pos/cart
func (h *POSHandler) ListCart(c *gin.Context) {
	items, err := h.cartService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// UpdateCartItem handles PATCH /pos/cart/:id
func (h *POSHandler) UpdateCartItem(c *gin.Context) {
	var req posapp.CartUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveCartItem handles DELETE /pos/cart/:id
func (h *POSHandler) RemoveCartItem(c *gin.Context) {
	result, err := h.cartService.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ClearCart handles DELETE /pos/cart
func (h *POSHandler) ClearCart(c *gin.Context) {
	result, err := h.cartService.Clear(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// PlaceOrder handles POST /pos/orders: insert, decrement stock, clear cart
func (h *POSHandler) PlaceOrder(c *gin.Context) {
	var req posapp.OrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListOrders handles GET /pos/orders
func (h *POSHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetOrder handles GET /pos/orders/:id
func (h *POSHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
