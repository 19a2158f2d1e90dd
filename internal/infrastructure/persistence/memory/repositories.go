package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewRepositories returns an empty in-memory store for every repository
func NewRepositories() *persistence.Repositories {
	products := NewProductRepository()
	return &persistence.Repositories{
		Users:             NewUserRepository(),
		Categories:        &CategoryRepository{newCollection[catalog.Category]("Category")},
		Subcategories:     &SubcategoryRepository{newCollection[catalog.Subcategory]("Subcategory")},
		Brands:            NewBrandRepository(),
		Sizes:             &SizeRepository{newCollection[catalog.Size]("Size")},
		Colors:            NewColorRepository(),
		Products:          products,
		Stock:             products,
		Reviews:           &ReviewRepository{newCollection[catalog.Review]("Review").newest("createdAt")},
		Cart:              NewCartRepository(),
		Orders:            NewOrderRepository(),
		Coupons:           NewCouponRepository(),
		POSCart:           NewPOSCartRepository(),
		POSOrders:         NewPOSOrderRepository(),
		ExpenseCategories: &ExpenseCategoryRepository{newCollection[finance.ExpenseCategory]("Expense category")},
		Expenses:          &ExpenseRepository{newCollection[finance.Expense]("Expense").newest("date")},
	}
}

// Plain collection-backed repositories
type (
	CategoryRepository struct {
		collection[catalog.Category]
	}
	SubcategoryRepository struct {
		collection[catalog.Subcategory]
	}
	SizeRepository struct {
		collection[catalog.Size]
	}
	ReviewRepository struct {
		collection[catalog.Review]
	}
	ExpenseCategoryRepository struct {
		collection[finance.ExpenseCategory]
	}
	ExpenseRepository struct {
		collection[finance.Expense]
	}
)

// UserRepository is the in-memory identity.UserRepository
type UserRepository struct{ collection[identity.User] }

// NewUserRepository creates an empty user store with unique emails
func NewUserRepository() *UserRepository {
	return &UserRepository{newCollection[identity.User]("User", "email")}
}

// FindByEmail finds a user by exact email
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	return r.findOne(func(d bson.M) bool { return stringEquals(d, "email", email) })
}

// BrandRepository is the in-memory catalog.BrandRepository
type BrandRepository struct{ collection[catalog.Brand] }

// NewBrandRepository creates an empty brand store with unique names
func NewBrandRepository() *BrandRepository {
	return &BrandRepository{newCollection[catalog.Brand]("Brand", "name")}
}

// ExistsByName checks for a brand with exactly this name
func (r *BrandRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.exists(func(d bson.M) bool { return stringEquals(d, "name", name) }), nil
}

// ColorRepository is the in-memory catalog.ColorRepository
type ColorRepository struct{ collection[catalog.Color] }

// NewColorRepository creates an empty color store with unique names
func NewColorRepository() *ColorRepository {
	return &ColorRepository{newCollection[catalog.Color]("Color", "name")}
}

// ExistsByName checks for a color with exactly this name
func (r *ColorRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.exists(func(d bson.M) bool { return stringEquals(d, "name", name) }), nil
}

// ProductRepository is the in-memory catalog.ProductRepository and stock ledger
type ProductRepository struct{ collection[catalog.Product] }

// NewProductRepository creates an empty product store
func NewProductRepository() *ProductRepository {
	return &ProductRepository{newCollection[catalog.Product]("Product")}
}

// Search filters on exact reference fields and a case-insensitive name substring
func (r *ProductRepository) Search(_ context.Context, q catalog.ProductQuery) ([]catalog.Product, error) {
	exact := shared.Filter{}.
		Set("categoryId", q.CategoryID).
		Set("subcategoryId", q.SubcategoryID).
		Set("brandId", q.BrandID).
		Set("status", q.Status)
	needle := strings.ToLower(q.Search)
	return r.find(func(d bson.M) bool {
		for k, v := range exact {
			if !stringEquals(d, k, v) {
				return false
			}
		}
		if needle == "" {
			return true
		}
		name, _ := d["name"].(string)
		return strings.Contains(strings.ToLower(name), needle)
	})
}

// AdjustStock increments stock by delta the way $inc does: a missing field
// starts at zero and a non-numeric value is an error.
func (r *ProductRepository) AdjustStock(_ context.Context, productID primitive.ObjectID, delta int) (shared.UpdateResult, error) {
	return r.mutate(func(d bson.M) bool { return d["_id"] == productID }, func(d bson.M) error {
		switch v := d["stock"].(type) {
		case nil:
			d["stock"] = int64(delta)
		case int32:
			d["stock"] = int64(v) + int64(delta)
		case int64:
			d["stock"] = v + int64(delta)
		case float64:
			d["stock"] = v + float64(delta)
		default:
			return fmt.Errorf("products update: cannot apply $inc to stock of type %T", v)
		}
		return nil
	})
}

// SetRaw overwrites one stored field without type conversion.
// Tests use it to seed documents written by other clients.
func (r *ProductRepository) SetRaw(id primitive.ObjectID, field string, value any) {
	_, _ = r.mutate(func(d bson.M) bool { return d["_id"] == id }, func(d bson.M) error {
		d[field] = value
		return nil
	})
}

// CartRepository is the in-memory trade.CartRepository
type CartRepository struct{ collection[trade.CartItem] }

// NewCartRepository creates an empty cart store
func NewCartRepository() *CartRepository {
	return &CartRepository{newCollection[trade.CartItem]("Cart item")}
}

// DeleteByEmail removes every cart line of one customer
func (r *CartRepository) DeleteByEmail(_ context.Context, email string) (shared.DeleteResult, error) {
	return r.deleteWhere(func(d bson.M) bool { return stringEquals(d, "email", email) }, false), nil
}

// OrderRepository is the in-memory trade.OrderRepository
type OrderRepository struct{ collection[trade.Order] }

// NewOrderRepository creates an empty order store listing newest first
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{newCollection[trade.Order]("Order").newest("createdAt")}
}

// FindDelivered lists orders whose status is exactly delivered
func (r *OrderRepository) FindDelivered(_ context.Context) ([]trade.Order, error) {
	return r.find(func(d bson.M) bool { return stringEquals(d, "status", string(trade.StatusDelivered)) })
}

// CouponRepository is the in-memory promotion.CouponRepository
type CouponRepository struct{ collection[promotion.Coupon] }

// NewCouponRepository creates an empty coupon store with unique codes
func NewCouponRepository() *CouponRepository {
	return &CouponRepository{newCollection[promotion.Coupon]("Coupon", "code").newest("createdAt")}
}

// FindActiveByCode finds an active coupon with exactly this code
func (r *CouponRepository) FindActiveByCode(_ context.Context, code string) (*promotion.Coupon, error) {
	return r.findOne(func(d bson.M) bool {
		return stringEquals(d, "code", code) && stringEquals(d, "status", string(promotion.CouponActive))
	})
}

// ExistsByCode checks for a coupon with this code in any status
func (r *CouponRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	return r.exists(func(d bson.M) bool { return stringEquals(d, "code", code) }), nil
}

// POSCartRepository is the in-memory pos.CartRepository
type POSCartRepository struct{ collection[pos.CartItem] }

// NewPOSCartRepository creates an empty POS cart
func NewPOSCartRepository() *POSCartRepository {
	return &POSCartRepository{newCollection[pos.CartItem]("POS cart item")}
}

// Clear empties the whole POS cart
func (r *POSCartRepository) Clear(_ context.Context) (shared.DeleteResult, error) {
	return r.deleteWhere(func(bson.M) bool { return true }, false), nil
}

// POSOrderRepository is the in-memory pos.OrderRepository
type POSOrderRepository struct{ collection[pos.Order] }

// NewPOSOrderRepository creates an empty POS order store listing newest first
func NewPOSOrderRepository() *POSOrderRepository {
	return &POSOrderRepository{newCollection[pos.Order]("POS order").newest("createdAt")}
}
