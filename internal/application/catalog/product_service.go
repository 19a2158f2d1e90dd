package catalog

import (
	"context"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductService handles product and review operations
type ProductService struct {
	productRepo catalog.ProductRepository
	reviewRepo  catalog.ReviewRepository
	now         func() time.Time
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, reviewRepo catalog.ReviewRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		now:         time.Now,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (shared.InsertResult, error) {
	product := toProduct(req)
	if err := product.Validate(); err != nil {
		return shared.InsertResult{}, err
	}
	product.CreatedAt = s.now()
	return s.productRepo.Create(ctx, product)
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductFilter) ([]catalog.Product, error) {
	return s.productRepo.Search(ctx, catalog.ProductQuery{
		CategoryID:    filter.CategoryID,
		SubcategoryID: filter.SubcategoryID,
		BrandID:       filter.BrandID,
		Status:        filter.Status,
		Search:        filter.Search,
	})
}

// GetByID returns one product. Malformed ids are rejected before the store is queried.
func (s *ProductService) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	return shared.Get[catalog.Product](ctx, s.productRepo, id, "Product")
}

// Update replaces every editable field of a product
func (s *ProductService) Update(ctx context.Context, id string, req ProductRequest) (shared.UpdateResult, error) {
	product := toProduct(req)
	if err := product.Validate(); err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Product](ctx, s.productRepo, id, shared.Changes{
		"name":          product.Name,
		"description":   product.Description,
		"specification": product.Specification,
		"categoryId":    product.CategoryID,
		"subcategoryId": product.SubcategoryID,
		"brandId":       product.BrandID,
		"sizes":         product.Sizes,
		"colors":        product.Colors,
		"purchasePrice": product.PurchasePrice,
		"oldPrice":      product.OldPrice,
		"newPrice":      product.NewPrice,
		"stock":         product.Stock,
		"status":        product.Status,
		"variant":       product.Variant,
		"images":        product.Images,
		"email":         product.Email,
	})
}

// UpdateStatus toggles product visibility
func (s *ProductService) UpdateStatus(ctx context.Context, id string, req StatusRequest) (shared.UpdateResult, error) {
	return shared.Modify[catalog.Product](ctx, s.productRepo, id, shared.Changes{"status": req.Status})
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Product](ctx, s.productRepo, id)
}

// CreateReview stores a customer review
func (s *ProductService) CreateReview(ctx context.Context, req ReviewRequest) (shared.InsertResult, error) {
	review, err := catalog.NewReview(req.ProductID, req.Rating, req.Text, req.Name, req.Email, s.now())
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.reviewRepo.Create(ctx, review)
}

// ListReviews returns reviews newest first
func (s *ProductService) ListReviews(ctx context.Context, filter ReviewFilter) ([]catalog.Review, error) {
	return s.reviewRepo.FindAll(ctx, shared.Filter{}.
		Set("productId", filter.ProductID).
		Set("email", filter.Email))
}

// DeleteReview removes a review
func (s *ProductService) DeleteReview(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Review](ctx, s.reviewRepo, id)
}

func toProduct(req ProductRequest) *catalog.Product {
	return &catalog.Product{
		Name:          req.Name,
		Description:   req.Description,
		Specification: req.Specification,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		BrandID:       req.BrandID,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		PurchasePrice: req.PurchasePrice,
		OldPrice:      req.OldPrice,
		NewPrice:      req.NewPrice,
		Stock:         req.Stock,
		Status:        catalog.Status(req.Status),
		Variant:       req.Variant,
		Images:        req.Images,
		Email:         req.Email,
	}
}
