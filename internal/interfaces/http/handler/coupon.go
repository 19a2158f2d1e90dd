package handler

import (
	"github.com/gin-gonic/gin"
	promotionapp "github.com/storefront/backend/internal/application/promotion"
)

// CouponHandler handles coupon management and apply-coupon
type CouponHandler struct {
	BaseHandler
	couponService *promotionapp.CouponService
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService *promotionapp.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req promotionapp.CouponRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.couponService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *CouponHandler) List(c *gin.Context) {
	var filter promotionapp.CouponFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	coupons, err := h.couponService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupons)
}

func (h *CouponHandler) GetByID(c *gin.Context) {
	coupon, err := h.couponService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, coupon)
}

func (h *CouponHandler) Update(c *gin.Context) {
	var req promotionapp.CouponRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.couponService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateStatus handles PATCH /coupons/:id/status
func (h *CouponHandler) UpdateStatus(c *gin.Context) {
	var req promotionapp.CouponStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.couponService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	result, err := h.couponService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Apply handles POST /apply-coupon. Nothing is written.
func (h *CouponHandler) Apply(c *gin.Context) {
	var req promotionapp.ApplyCouponRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.couponService.Apply(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
