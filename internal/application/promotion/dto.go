package promotion

import "github.com/storefront/backend/internal/domain/shared"

// CouponRequest creates or replaces a coupon.
// Dates accept RFC 3339, "2006-01-02T15:04" or "2006-01-02".
type CouponRequest struct {
	Code           string        `json:"code" binding:"required,max=50"`
	DiscountType   string        `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue  shared.Amount `json:"discountValue"`
	Status         string        `json:"status" binding:"omitempty,oneof=active inactive"`
	StartDate      string        `json:"startDate"`
	ExpiryDate     string        `json:"expiryDate"`
	MinOrderAmount shared.Amount `json:"minOrderAmount"`
}

// CouponFilter carries the coupon list query parameters
type CouponFilter struct {
	Status string `form:"status"`
}

// CouponStatusRequest toggles a coupon
type CouponStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// ApplyCouponRequest asks for the discount a coupon gives on a total.
// A missing or non-numeric total counts as zero.
type ApplyCouponRequest struct {
	Code        string        `json:"code"`
	TotalAmount shared.Amount `json:"totalAmount"`
}

// ApplyCouponResponse is the outcome of a successful apply
type ApplyCouponResponse struct {
	Success       bool    `json:"success"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"finalAmount"`
}
