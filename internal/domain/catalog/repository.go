package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryRepository persists categories
type CategoryRepository interface {
	shared.Repository[Category]
}

// SubcategoryRepository persists subcategories
type SubcategoryRepository interface {
	shared.Repository[Subcategory]
}

// BrandRepository persists brands
type BrandRepository interface {
	shared.Repository[Brand]
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// SizeRepository persists sizes
type SizeRepository interface {
	shared.Repository[Size]
}

// ColorRepository persists colors
type ColorRepository interface {
	shared.Repository[Color]
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ProductRepository persists products
type ProductRepository interface {
	shared.Repository[Product]
	Search(ctx context.Context, query ProductQuery) ([]Product, error)
}

// ReviewRepository persists reviews. Listings are newest first.
type ReviewRepository interface {
	shared.Repository[Review]
}
