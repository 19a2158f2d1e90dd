package promotion

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := fixedNow.Add(-24 * time.Hour)
	future := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name         string
		coupon       *Coupon
		total        string
		wantDiscount string
		wantFinal    string
		wantCode     string
		wantMessage  string
	}{
		{
			name:         "percentage discount",
			coupon:       &Coupon{Code: "SAVE10", DiscountType: DiscountPercentage, DiscountValue: 10, Status: CouponActive},
			total:        "250",
			wantDiscount: "25",
			wantFinal:    "225",
		},
		{
			name:         "percentage discount reports rounded value but subtracts precise one",
			coupon:       &Coupon{Code: "ODD", DiscountType: DiscountPercentage, DiscountValue: 12.5, Status: CouponActive},
			total:        "99",
			wantDiscount: "12",
			wantFinal:    "86.625",
		},
		{
			name:         "half unit rounds up",
			coupon:       &Coupon{Code: "HALF", DiscountType: DiscountPercentage, DiscountValue: 10, Status: CouponActive},
			total:        "25",
			wantDiscount: "3",
			wantFinal:    "22.5",
		},
		{
			name:         "percentage above hundred is capped at total",
			coupon:       &Coupon{Code: "ALL", DiscountType: DiscountPercentage, DiscountValue: 150, Status: CouponActive},
			total:        "100",
			wantDiscount: "100",
			wantFinal:    "0",
		},
		{
			name:         "fixed discount",
			coupon:       &Coupon{Code: "FLAT50", DiscountType: DiscountFixed, DiscountValue: 50, Status: CouponActive},
			total:        "300",
			wantDiscount: "50",
			wantFinal:    "250",
		},
		{
			name:         "fixed discount capped at total",
			coupon:       &Coupon{Code: "FLAT50", DiscountType: DiscountFixed, DiscountValue: 50, Status: CouponActive},
			total:        "30",
			wantDiscount: "30",
			wantFinal:    "0",
		},
		{
			name:         "negative fixed value floors to zero",
			coupon:       &Coupon{Code: "NEG", DiscountType: DiscountFixed, DiscountValue: -5, Status: CouponActive},
			total:        "40",
			wantDiscount: "0",
			wantFinal:    "40",
		},
		{
			name:         "unknown type gives no discount",
			coupon:       &Coupon{Code: "ODDTYPE", DiscountType: "bogo", DiscountValue: 20, Status: CouponActive},
			total:        "80",
			wantDiscount: "0",
			wantFinal:    "80",
		},
		{
			name:         "negative total is treated as zero",
			coupon:       &Coupon{Code: "SAVE10", DiscountType: DiscountPercentage, DiscountValue: 10, Status: CouponActive},
			total:        "-20",
			wantDiscount: "0",
			wantFinal:    "0",
		},
		{
			name:         "inside window",
			coupon:       &Coupon{Code: "WIN", DiscountType: DiscountFixed, DiscountValue: 5, Status: CouponActive, StartDate: &past, ExpiryDate: &future},
			total:        "20",
			wantDiscount: "5",
			wantFinal:    "15",
		},
		{
			name:         "expiring exactly now is still valid",
			coupon:       &Coupon{Code: "EDGE", DiscountType: DiscountFixed, DiscountValue: 5, Status: CouponActive, ExpiryDate: &fixedNow},
			total:        "20",
			wantDiscount: "5",
			wantFinal:    "15",
		},
		{
			name:         "minimum met exactly",
			coupon:       &Coupon{Code: "MIN", DiscountType: DiscountFixed, DiscountValue: 10, Status: CouponActive, MinOrderAmount: 500},
			total:        "500",
			wantDiscount: "10",
			wantFinal:    "490",
		},
		{
			name:        "inactive coupon is not found",
			coupon:      &Coupon{Code: "OFF", DiscountType: DiscountFixed, DiscountValue: 10, Status: CouponInactive},
			total:       "100",
			wantCode:    shared.ErrNotFound.Code,
			wantMessage: MsgInvalidCoupon,
		},
		{
			name:        "not yet started",
			coupon:      &Coupon{Code: "SOON", DiscountType: DiscountFixed, DiscountValue: 10, Status: CouponActive, StartDate: &future},
			total:       "100",
			wantCode:    shared.ErrCouponRejected.Code,
			wantMessage: MsgNotActiveYet,
		},
		{
			name:        "expired",
			coupon:      &Coupon{Code: "OLD", DiscountType: DiscountPercentage, DiscountValue: 10, Status: CouponActive, ExpiryDate: &past},
			total:       "100",
			wantCode:    shared.ErrCouponRejected.Code,
			wantMessage: MsgExpired,
		},
		{
			name:        "below minimum order",
			coupon:      &Coupon{Code: "MIN", DiscountType: DiscountFixed, DiscountValue: 10, Status: CouponActive, MinOrderAmount: 500},
			total:       "499",
			wantCode:    shared.ErrCouponRejected.Code,
			wantMessage: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.coupon, decimal.RequireFromString(tt.total), fixedNow)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, result)
				var domainErr *shared.DomainError
				require.True(t, errors.As(err, &domainErr))
				assert.Equal(t, tt.wantCode, domainErr.Code)
				assert.Contains(t, domainErr.Message, tt.wantMessage)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantDiscount).Equal(result.Discount),
				"discount: want %s, got %s", tt.wantDiscount, result.Discount)
			assert.True(t, decimal.RequireFromString(tt.wantFinal).Equal(result.FinalAmount),
				"final: want %s, got %s", tt.wantFinal, result.FinalAmount)
		})
	}
}

func TestEvaluate_DoesNotMutateCoupon(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	coupon := &Coupon{Code: "SAVE10", DiscountType: DiscountPercentage, DiscountValue: 10, Status: CouponActive, MinOrderAmount: 10}
	snapshot := *coupon

	_, err := Evaluate(coupon, decimal.NewFromInt(100), now)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *coupon)
}

func TestCoupon_Validate(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	t.Run("trims code and defaults status", func(t *testing.T) {
		c := &Coupon{Code: "  Summer25 ", DiscountType: DiscountPercentage, DiscountValue: 25}
		require.NoError(t, c.Validate())
		assert.Equal(t, "Summer25", c.Code)
		assert.Equal(t, CouponActive, c.Status)
	})

	t.Run("rejects bad definitions", func(t *testing.T) {
		bad := []*Coupon{
			{Code: "", DiscountType: DiscountFixed, DiscountValue: 5},
			{Code: "X", DiscountType: "bogus", DiscountValue: 5},
			{Code: "X", DiscountType: DiscountPercentage, DiscountValue: 120},
			{Code: "X", DiscountType: DiscountFixed, DiscountValue: -1},
			{Code: "X", DiscountType: DiscountFixed, DiscountValue: 1, MinOrderAmount: -3},
			{Code: "X", DiscountType: DiscountFixed, DiscountValue: 1, StartDate: &start, ExpiryDate: &end},
		}
		for _, c := range bad {
			assert.ErrorIs(t, c.Validate(), shared.ErrInvalidInput)
		}
	})
}
