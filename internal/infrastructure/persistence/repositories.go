package persistence

import (
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/inventory"
	"github.com/storefront/backend/internal/domain/pos"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/trade"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles every store the services depend on
type Repositories struct {
	Users             identity.UserRepository
	Categories        catalog.CategoryRepository
	Subcategories     catalog.SubcategoryRepository
	Brands            catalog.BrandRepository
	Sizes             catalog.SizeRepository
	Colors            catalog.ColorRepository
	Products          catalog.ProductRepository
	Stock             inventory.StockLedger
	Reviews           catalog.ReviewRepository
	Cart              trade.CartRepository
	Orders            trade.OrderRepository
	Coupons           promotion.CouponRepository
	POSCart           pos.CartRepository
	POSOrders         pos.OrderRepository
	ExpenseCategories finance.ExpenseCategoryRepository
	Expenses          finance.ExpenseRepository
}

// NewRepositories wires MongoDB repositories over db
func NewRepositories(db *mongo.Database) *Repositories {
	products := NewProductRepository(db)
	return &Repositories{
		Users:             NewUserRepository(db),
		Categories:        NewCategoryRepository(db),
		Subcategories:     NewSubcategoryRepository(db),
		Brands:            NewBrandRepository(db),
		Sizes:             NewSizeRepository(db),
		Colors:            NewColorRepository(db),
		Products:          products,
		Stock:             products,
		Reviews:           NewReviewRepository(db),
		Cart:              NewCartRepository(db),
		Orders:            NewOrderRepository(db),
		Coupons:           NewCouponRepository(db),
		POSCart:           NewPOSCartRepository(db),
		POSOrders:         NewPOSOrderRepository(db),
		ExpenseCategories: NewExpenseCategoryRepository(db),
		Expenses:          NewExpenseRepository(db),
	}
}
