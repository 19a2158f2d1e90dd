package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/storefront/backend/internal/application/trade"
)

// CartHandler handles the customer cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *tradeapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *tradeapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add handles POST /cart
func (h *CartHandler) Add(c *gin.Context) {
	var req tradeapp.CartItemRequest
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

// List handles GET /cart?email=
func (h *CartHandler) List(c *gin.Context) {
	var filter tradeapp.CartFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	items, err := h.cartService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Update handles PATCH /cart/:id
func (h *CartHandler) Update(c *gin.Context) {
	var req tradeapp.CartUpdateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.cartService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Remove handles DELETE /cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	result, err := h.cartService.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Clear handles DELETE /cart?email=
func (h *CartHandler) Clear(c *gin.Context) {
	result, err := h.cartService.Clear(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// OrderHandler handles online order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place handles POST /orders; the status starts as pending
func (h *OrderHandler) Place(c *gin.Context) {
	var req tradeapp.OrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /orders?email&status
func (h *OrderHandler) List(c *gin.Context) {
	var filter tradeapp.OrderFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	orders, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateStatus handles PATCH /orders/:id/status. The response lists the
// steps taken, including stock decrements on delivery.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req tradeapp.OrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	report, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	result, err := h.orderService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
