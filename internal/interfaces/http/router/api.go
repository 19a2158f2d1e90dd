package router

import (
	"go.uber.org/zap"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	financeapp "github.com/storefront/backend/internal/application/finance"
	identityapp "github.com/storefront/backend/internal/application/identity"
	inventoryapp "github.com/storefront/backend/internal/application/inventory"
	posapp "github.com/storefront/backend/internal/application/pos"
	promotionapp "github.com/storefront/backend/internal/application/promotion"
	reportapp "github.com/storefront/backend/internal/application/report"
	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/infrastructure/payment"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// BusinessRecorder observes stock, coupon and payment outcomes
type BusinessRecorder interface {
	inventoryapp.Recorder
	promotionapp.ApplyRecorder
	financeapp.PaymentRecorder
}

// APIDeps are the collaborators behind the API handlers
type APIDeps struct {
	Repos *persistence.Repositories

	// Gateway opens checkout sessions; nil disables payments
	Gateway finance.PaymentGateway
	Payment financeapp.PaymentServiceConfig

	// Media stores product images; nil disables uploads
	Media       catalogapp.MediaStorage
	MediaPrefix string

	// Recorder is optional
	Recorder BusinessRecorder

	// DB answers health pings; nil for the in-memory driver
	DB     handler.Pinger
	Driver string

	Logger *zap.Logger
}

// NewHandlers builds services over the repositories and wraps them in handlers
func NewHandlers(d APIDeps) Handlers {
	repos := d.Repos
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gateway := d.Gateway
	if gateway == nil {
		gateway = payment.DisabledGateway{}
	}

	stock := inventoryapp.NewStockAdjuster(repos.Orders, repos.POSOrders, repos.POSCart, repos.Stock)
	coupons := promotionapp.NewCouponService(repos.Coupons)
	payments := financeapp.NewPaymentService(gateway, repos.Orders, d.Payment, log.Named("payment"))
	if d.Recorder != nil {
		stock.WithRecorder(d.Recorder)
		coupons.WithRecorder(d.Recorder)
		payments.WithRecorder(d.Recorder)
	}

	var media *catalogapp.MediaService
	if d.Media != nil {
		media = catalogapp.NewMediaService(d.Media, d.MediaPrefix)
	}

	return Handlers{
		System:    handler.NewSystemHandler(d.DB, d.Driver),
		User:      handler.NewUserHandler(identityapp.NewUserService(repos.Users)),
		Category:  handler.NewCategoryHandler(catalogapp.NewCategoryService(repos.Categories, repos.Subcategories)),
		Attribute: handler.NewAttributeHandler(catalogapp.NewAttributeService(repos.Brands, repos.Sizes, repos.Colors)),
		Product:   handler.NewProductHandler(catalogapp.NewProductService(repos.Products, repos.Reviews), media),
		Cart:      handler.NewCartHandler(tradeapp.NewCartService(repos.Cart)),
		Order:     handler.NewOrderHandler(tradeapp.NewOrderService(repos.Orders, stock)),
		Coupon:    handler.NewCouponHandler(coupons),
		Payment:   handler.NewPaymentHandler(payments),
		POS: handler.NewPOSHandler(
			posapp.NewCartService(repos.POSCart),
			posapp.NewOrderService(repos.POSOrders, stock),
		),
		Expense: handler.NewExpenseHandler(financeapp.NewExpenseService(repos.ExpenseCategories, repos.Expenses)),
		Report:  handler.NewReportHandler(reportapp.NewSalesReportService(repos.Orders, repos.POSOrders)),
	}
}
