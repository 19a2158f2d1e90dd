package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/promotion"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CouponRepository implements promotion.CouponRepository
type CouponRepository struct {
	collection[promotion.Coupon]
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{newCollection[promotion.Coupon](db, CollCoupons, "Coupon").sorted(newestFirst)}
}

// FindActiveByCode finds an active coupon with exactly this code
func (r *CouponRepository) FindActiveByCode(ctx context.Context, code string) (*promotion.Coupon, error) {
	return r.findOne(ctx, bson.M{"code": code, "status": string(promotion.CouponActive)})
}

// ExistsByCode checks for a coupon with this code in any status
func (r *CouponRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, bson.M{"code": code})
}
