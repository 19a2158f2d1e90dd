package promotion

import (
	"context"
	"errors"
	"time"

	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
)

// ApplyRecorder observes coupon applications
type ApplyRecorder interface {
	RecordCouponApplied(ctx context.Context, outcome string)
}

type nopApplyRecorder struct{}

func (nopApplyRecorder) RecordCouponApplied(context.Context, string) {}

// Apply outcomes reported to the recorder
const (
	OutcomeApplied  = "applied"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
)

// CouponService manages coupons and evaluates them against order totals
type CouponService struct {
	couponRepo promotion.CouponRepository
	recorder   ApplyRecorder
	now        func() time.Time
}

// NewCouponService creates a new CouponService
func NewCouponService(couponRepo promotion.CouponRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		recorder:   nopApplyRecorder{},
		now:        time.Now,
	}
}

// WithRecorder sets the apply recorder
func (s *CouponService) WithRecorder(r ApplyRecorder) *CouponService {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithClock overrides the time source used for window checks
func (s *CouponService) WithClock(now func() time.Time) *CouponService {
	if now != nil {
		s.now = now
	}
	return s
}

// Create stores a new coupon; codes are unique
func (s *CouponService) Create(ctx context.Context, req CouponRequest) (shared.InsertResult, error) {
	coupon, err := toCoupon(req)
	if err != nil {
		return shared.InsertResult{}, err
	}
	exists, err := s.couponRepo.ExistsByCode(ctx, coupon.Code)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if exists {
		return shared.InsertResult{}, shared.AlreadyExistsError("Coupon", "code", coupon.Code)
	}
	coupon.CreatedAt = s.now()
	return s.couponRepo.Create(ctx, coupon)
}

// List returns coupons newest first, optionally by status
func (s *CouponService) List(ctx context.Context, filter CouponFilter) ([]promotion.Coupon, error) {
	return s.couponRepo.FindAll(ctx, shared.Filter{}.Set("status", filter.Status))
}

// GetByID returns one coupon
func (s *CouponService) GetByID(ctx context.Context, id string) (*promotion.Coupon, error) {
	return shared.Get[promotion.Coupon](ctx, s.couponRepo, id, "Coupon")
}

// Update replaces a coupon definition; createdAt is kept
func (s *CouponService) Update(ctx context.Context, id string, req CouponRequest) (shared.UpdateResult, error) {
	coupon, err := toCoupon(req)
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[promotion.Coupon](ctx, s.couponRepo, id, shared.Changes{
		"code":           coupon.Code,
		"discountType":   coupon.DiscountType,
		"discountValue":  coupon.DiscountValue,
		"status":         coupon.Status,
		"startDate":      coupon.StartDate,
		"expiryDate":     coupon.ExpiryDate,
		"minOrderAmount": coupon.MinOrderAmount,
	})
}

// UpdateStatus activates or deactivates a coupon
func (s *CouponService) UpdateStatus(ctx context.Context, id string, req CouponStatusRequest) (shared.UpdateResult, error) {
	return shared.Modify[promotion.Coupon](ctx, s.couponRepo, id, shared.Changes{
		"status": promotion.CouponStatus(req.Status),
	})
}

// Delete removes a coupon
func (s *CouponService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[promotion.Coupon](ctx, s.couponRepo, id)
}

// Apply evaluates the coupon against a total. The coupon is only read.
func (s *CouponService) Apply(ctx context.Context, req ApplyCouponRequest) (*ApplyCouponResponse, error) {
	code := promotion.NormalizeCode(req.Code)
	if code == "" {
		return nil, shared.InvalidInputError("Coupon code is required")
	}

	coupon, err := s.couponRepo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.recorder.RecordCouponApplied(ctx, OutcomeNotFound)
			return nil, shared.NewDomainError(shared.ErrNotFound.Code, promotion.MsgInvalidCoupon)
		}
		return nil, err
	}

	eval, err := promotion.Evaluate(coupon, req.TotalAmount.Decimal(), s.now())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.recorder.RecordCouponApplied(ctx, OutcomeNotFound)
		} else {
			s.recorder.RecordCouponApplied(ctx, OutcomeRejected)
		}
		return nil, err
	}
	s.recorder.RecordCouponApplied(ctx, OutcomeApplied)

	return &ApplyCouponResponse{
		Success:       true,
		Code:          coupon.Code,
		DiscountType:  string(coupon.DiscountType),
		DiscountValue: coupon.DiscountValue.Float64(),
		Discount:      eval.Discount.InexactFloat64(),
		FinalAmount:   eval.FinalAmount.InexactFloat64(),
	}, nil
}

func toCoupon(req CouponRequest) (*promotion.Coupon, error) {
	start, err := shared.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	expiry, err := shared.ParseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	coupon := &promotion.Coupon{
		Code:           req.Code,
		DiscountType:   promotion.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		Status:         promotion.CouponStatus(req.Status),
		StartDate:      start,
		ExpiryDate:     expiry,
		MinOrderAmount: req.MinOrderAmount,
	}
	if err := coupon.Validate(); err != nil {
		return nil, err
	}
	return coupon, nil
}
