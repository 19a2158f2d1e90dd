package promotion

import (
	"context"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountType enumerates the supported coupon discount strategies
type DiscountType string

const (
	// DiscountPercentage takes a percentage of the order total
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed amount off the order total
	DiscountFixed DiscountType = "fixed"
)

// CouponStatus represents whether a coupon can be applied
type CouponStatus string

const (
	CouponActive   CouponStatus = "active"
	CouponInactive CouponStatus = "inactive"
)

// Coupon is a discount code. Its window is enforced when applied, never by deletion.
type Coupon struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code           string             `bson:"code" json:"code"`
	DiscountType   DiscountType       `bson:"discountType" json:"discountType"`
	DiscountValue  shared.Amount      `bson:"discountValue" json:"discountValue"`
	Status         CouponStatus       `bson:"status" json:"status"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	ExpiryDate     *time.Time         `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	MinOrderAmount shared.Amount      `bson:"minOrderAmount" json:"minOrderAmount"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// NormalizeCode trims surrounding whitespace; case is significant
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// Validate checks the coupon definition before it is stored
func (c *Coupon) Validate() error {
	c.Code = NormalizeCode(c.Code)
	if c.Code == "" {
		return shared.InvalidInputError("Coupon code is required")
	}
	switch c.DiscountType {
	case DiscountPercentage:
		if c.DiscountValue < 0 || c.DiscountValue > 100 {
			return shared.InvalidInputError("Percentage discount must be between 0 and 100")
		}
	case DiscountFixed:
		if c.DiscountValue < 0 {
			return shared.InvalidInputError("Fixed discount cannot be negative")
		}
	default:
		return shared.InvalidInputError("Discount type must be percentage or fixed")
	}
	if c.MinOrderAmount < 0 {
		return shared.InvalidInputError("Minimum order amount cannot be negative")
	}
	if c.StartDate != nil && c.ExpiryDate != nil && c.ExpiryDate.Before(*c.StartDate) {
		return shared.InvalidInputError("Expiry date must not be before start date")
	}
	if c.Status == "" {
		c.Status = CouponActive
	}
	return nil
}

// CouponRepository persists coupons
type CouponRepository interface {
	shared.Repository[Coupon]
	// FindActiveByCode finds a coupon by exact code whose status is active.
	// Returns shared.ErrNotFound when none matches.
	FindActiveByCode(ctx context.Context, code string) (*Coupon, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
