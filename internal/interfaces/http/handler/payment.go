package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	financeapp "github.com/storefront/backend/internal/application/finance"
)

// PaymentHandler serves the SSLCommerz checkout and its callbacks.
// Callbacks arrive as form posts from the gateway and answer with 303
// redirects to the storefront.
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Init handles POST /sslcommerz/init
func (h *PaymentHandler) Init(c *gin.Context) {
	var req financeapp.InitPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.paymentService.Init(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// OnSuccess handles POST /sslcommerz/success
func (h *PaymentHandler) OnSuccess(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	location, err := h.paymentService.HandleSuccess(c.Request.Context(), form)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// OnFail handles POST /sslcommerz/fail
func (h *PaymentHandler) OnFail(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusSeeOther, h.paymentService.HandleFail(c.Request.Context(), form))
}

// OnCancel handles POST /sslcommerz/cancel
func (h *PaymentHandler) OnCancel(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusSeeOther, h.paymentService.HandleCancel(c.Request.Context(), form))
}

// OnIPN handles POST /sslcommerz/ipn
func (h *PaymentHandler) OnIPN(c *gin.Context) {
	form, ok := h.form(c)
	if !ok {
		return
	}
	resp, err := h.paymentService.HandleIPN(c.Request.Context(), form)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *PaymentHandler) form(c *gin.Context) (url.Values, bool) {
	if err := c.Request.ParseForm(); err != nil {
		h.bindError(c, err)
		return nil, false
	}
	return c.Request.PostForm, true
}
