package persistence

import (
	"context"
	"regexp"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRepository implements catalog.CategoryRepository
type CategoryRepository struct {
	collection[catalog.Category]
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{newCollection[catalog.Category](db, CollCategories, "Category")}
}

// SubcategoryRepository implements catalog.SubcategoryRepository
type SubcategoryRepository struct {
	collection[catalog.Subcategory]
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *mongo.Database) *SubcategoryRepository {
	return &SubcategoryRepository{newCollection[catalog.Subcategory](db, CollSubcategories, "Subcategory")}
}

// BrandRepository implements catalog.BrandRepository
type BrandRepository struct {
	collection[catalog.Brand]
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{newCollection[catalog.Brand](db, CollBrands, "Brand")}
}

// ExistsByName checks for a brand with exactly this name
func (r *BrandRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, bson.M{"name": name})
}

// SizeRepository implements catalog.SizeRepository
type SizeRepository struct {
	collection[catalog.Size]
}

// NewSizeRepository creates a new size repository
func NewSizeRepository(db *mongo.Database) *SizeRepository {
	return &SizeRepository{newCollection[catalog.Size](db, CollSizes, "Size")}
}

// ColorRepository implements catalog.ColorRepository
type ColorRepository struct {
	collection[catalog.Color]
}

// NewColorRepository creates a new color repository
func NewColorRepository(db *mongo.Database) *ColorRepository {
	return &ColorRepository{newCollection[catalog.Color](db, CollColors, "Color")}
}

// ExistsByName checks for a color with exactly this name
func (r *ColorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, bson.M{"name": name})
}

// ProductRepository implements catalog.ProductRepository and inventory.StockLedger
type ProductRepository struct {
	collection[catalog.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{newCollection[catalog.Product](db, CollProducts, "Product")}
}

// Search lists products matching every non-empty query field.
// Search text matches the name case-insensitively as a literal substring.
func (r *ProductRepository) Search(ctx context.Context, q catalog.ProductQuery) ([]catalog.Product, error) {
	filter := bson.M{}
	setIf(filter, "categoryId", q.CategoryID)
	setIf(filter, "subcategoryId", q.SubcategoryID)
	setIf(filter, "brandId", q.BrandID)
	setIf(filter, "status", q.Status)
	if q.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}
	return r.find(ctx, filter)
}

// AdjustStock applies $inc to the product's stock. No floor is enforced.
func (r *ProductRepository) AdjustStock(ctx context.Context, productID primitive.ObjectID, delta int) (shared.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{"_id": productID}, bson.M{"$inc": bson.M{"stock": delta}})
}

// ReviewRepository implements catalog.ReviewRepository
type ReviewRepository struct {
	collection[catalog.Review]
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{newCollection[catalog.Review](db, CollReviews, "Review").sorted(newestFirst)}
}

func setIf(filter bson.M, field, value string) {
	if value != "" {
		filter[field] = value
	}
}
