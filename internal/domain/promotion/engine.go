package promotion

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// Error messages returned by Evaluate
const (
	MsgInvalidCoupon = "Invalid or inactive coupon"
	MsgNotActiveYet  = "Coupon is not active yet"
	MsgExpired       = "Coupon has expired"
)

// Evaluation is the outcome of applying a coupon to an order total
type Evaluation struct {
	// Discount is the clamped discount rounded to the nearest whole unit
	Discount decimal.Decimal
	// FinalAmount is the total minus the unrounded discount, floored at zero
	FinalAmount decimal.Decimal
}

// Evaluate applies coupon to total at the instant now.
// It has no side effects; the coupon is only read.
func Evaluate(coupon *Coupon, total decimal.Decimal, now time.Time) (*Evaluation, error) {
	if coupon == nil || coupon.Status != CouponActive {
		return nil, shared.NewDomainError(shared.ErrNotFound.Code, MsgInvalidCoupon)
	}
	if total.IsNegative() {
		total = decimal.Zero
	}

	if coupon.StartDate != nil && coupon.StartDate.After(now) {
		return nil, rejected(MsgNotActiveYet)
	}
	if coupon.ExpiryDate != nil && coupon.ExpiryDate.Before(now) {
		return nil, rejected(MsgExpired)
	}

	minOrder := coupon.MinOrderAmount.Decimal()
	if minOrder.IsPositive() && total.LessThan(minOrder) {
		return nil, rejected(fmt.Sprintf("Minimum order amount for this coupon is %s", minOrder.String()))
	}

	discount := rawDiscount(coupon, total)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(total) {
		discount = total
	}

	final := total.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return &Evaluation{
		Discount:    discount.Round(0),
		FinalAmount: final,
	}, nil
}

func rawDiscount(coupon *Coupon, total decimal.Decimal) decimal.Decimal {
	value := coupon.DiscountValue.Decimal()
	switch coupon.DiscountType {
	case DiscountPercentage:
		return total.Mul(value).Div(hundred)
	case DiscountFixed:
		return value
	default:
		return decimal.Zero
	}
}

func rejected(message string) error {
	return shared.NewDomainError(shared.ErrCouponRejected.Code, message)
}
