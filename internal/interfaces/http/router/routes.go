package router

import (
	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// Handlers bundles every handler the API exposes
type Handlers struct {
	System    *handler.SystemHandler
	User      *handler.UserHandler
	Category  *handler.CategoryHandler
	Attribute *handler.AttributeHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Coupon    *handler.CouponHandler
	Payment   *handler.PaymentHandler
	POS       *handler.POSHandler
	Expense   *handler.ExpenseHandler
	Report    *handler.ReportHandler
}

// DomainGroups builds the route groups for all resources
func DomainGroups(h Handlers) []RouteRegistrar {
	system := NewDomainGroup("system", "/")
	system.GET("", h.System.Welcome)
	system.GET("/health", h.System.Health)

	users := NewDomainGroup("identity", "/users")
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/role", h.User.GetRole)
	users.PATCH("/admin/:id", h.User.MakeAdmin)
	users.DELETE("/:id", h.User.Delete)

	categories := NewDomainGroup("catalog", "/categories")
	categories.POST("", h.Category.Create)
	categories.GET("", h.Category.List)
	categories.GET("/:id", h.Category.GetByID)
	categories.PUT("/:id", h.Category.Update)
	categories.DELETE("/:id", h.Category.Delete)

	subcategories := NewDomainGroup("catalog", "/subcategories")
	subcategories.POST("", h.Category.CreateSubcategory)
	subcategories.GET("", h.Category.ListSubcategories)
	subcategories.GET("/:id", h.Category.GetSubcategory)
	subcategories.PUT("/:id", h.Category.UpdateSubcategory)
	subcategories.DELETE("/:id", h.Category.DeleteSubcategory)

	brands := NewDomainGroup("catalog", "/brands")
	brands.POST("", h.Attribute.CreateBrand)
	brands.GET("", h.Attribute.ListBrands)
	brands.GET("/:id", h.Attribute.GetBrand)
	brands.PUT("/:id", h.Attribute.UpdateBrand)
	brands.DELETE("/:id", h.Attribute.DeleteBrand)

	sizes := NewDomainGroup("catalog", "/sizes")
	sizes.POST("", h.Attribute.CreateSize)
	sizes.GET("", h.Attribute.ListSizes)
	sizes.GET("/:id", h.Attribute.GetSize)
	sizes.PUT("/:id", h.Attribute.UpdateSize)
	sizes.DELETE("/:id", h.Attribute.DeleteSize)

	colors := NewDomainGroup("catalog", "/colors")
	colors.POST("", h.Attribute.CreateColor)
	colors.GET("", h.Attribute.ListColors)
	colors.GET("/:id", h.Attribute.GetColor)
	colors.PUT("/:id", h.Attribute.UpdateColor)
	colors.DELETE("/:id", h.Attribute.DeleteColor)

	products := NewDomainGroup("catalog", "/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.POST("/images", h.Product.UploadImage)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", h.Product.Update)
	products.PATCH("/:id/status", h.Product.UpdateStatus)
	products.DELETE("/:id", h.Product.Delete)

	reviews := NewDomainGroup("catalog", "/reviews")
	reviews.POST("", h.Product.CreateReview)
	reviews.GET("", h.Product.ListReviews)
	reviews.DELETE("/:id", h.Product.DeleteReview)

	cart := NewDomainGroup("trade", "/cart")
	cart.POST("", h.Cart.Add)
	cart.GET("", h.Cart.List)
	cart.DELETE("", h.Cart.Clear)
	cart.PATCH("/:id", h.Cart.Update)
	cart.DELETE("/:id", h.Cart.Remove)

	orders := NewDomainGroup("trade", "/orders")
	orders.POST("", h.Order.Place)
	orders.GET("", h.Order.List)
	orders.GET("/:id", h.Order.GetByID)
	orders.PATCH("/:id/status", h.Order.UpdateStatus)
	orders.DELETE("/:id", h.Order.Delete)

	coupons := NewDomainGroup("promotion", "/coupons")
	coupons.POST("", h.Coupon.Create)
	coupons.GET("", h.Coupon.List)
	coupons.GET("/:id", h.Coupon.GetByID)
	coupons.PUT("/:id", h.Coupon.Update)
	coupons.PATCH("/:id/status", h.Coupon.UpdateStatus)
	coupons.DELETE("/:id", h.Coupon.Delete)

	applyCoupon := NewDomainGroup("promotion", "/apply-coupon")
	applyCoupon.POST("", h.Coupon.Apply)

	payment := NewDomainGroup("payment", "/sslcommerz")
	payment.POST("/init", h.Payment.Init)
	payment.POST("/success", h.Payment.OnSuccess)
	payment.POST("/fail", h.Payment.OnFail)
	payment.POST("/cancel", h.Payment.OnCancel)
	payment.POST("/ipn", h.Payment.OnIPN)

	pos := NewDomainGroup("pos", "/pos")
	posCart := pos.Group("pos-cart", "/cart")
	posCart.POST("", h.POS.AddToCart)
	posCart.GET("", h.POS.ListCart)
	posCart.DELETE("", h.POS.ClearCart)
	posCart.PATCH("/:id", h.POS.UpdateCartItem)
	posCart.DELETE("/:id", h.POS.RemoveCartItem)
	posOrders := pos.Group("pos-orders", "/orders")
	posOrders.POST("", h.POS.PlaceOrder)
	posOrders.GET("", h.POS.ListOrders)
	posOrders.GET("/:id", h.POS.GetOrder)

	report := NewDomainGroup("report", "/sales-report")
	report.GET("", h.Report.SalesReport)

	expenseCategories := NewDomainGroup("finance", "/expense-categories")
	expenseCategories.POST("", h.Expense.CreateCategory)
	expenseCategories.GET("", h.Expense.ListCategories)
	expenseCategories.PUT("/:id", h.Expense.UpdateCategory)
	expenseCategories.DELETE("/:id", h.Expense.DeleteCategory)

	expenses := NewDomainGroup("finance", "/expenses")
	expenses.POST("", h.Expense.Create)
	expenses.GET("", h.Expense.List)
	expenses.GET("/:id", h.Expense.GetByID)
	expenses.PUT("/:id", h.Expense.Update)
	expenses.DELETE("/:id", h.Expense.Delete)

	return []RouteRegistrar{
		system, users, categories, subcategories, brands, sizes, colors,
		products, reviews, cart, orders, coupons, applyCoupon, payment,
		pos, report, expenseCategories, expenses,
	}
}
