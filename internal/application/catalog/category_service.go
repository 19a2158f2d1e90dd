package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryService handles category and subcategory operations
type CategoryService struct {
	categoryRepo    catalog.CategoryRepository
	subcategoryRepo catalog.SubcategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	subcategoryRepo catalog.SubcategoryRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (shared.InsertResult, error) {
	category, err := catalog.NewCategory(req.Name, req.Image, catalog.Status(req.Status))
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.categoryRepo.Create(ctx, category)
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context, status string) ([]catalog.Category, error) {
	return s.categoryRepo.FindAll(ctx, shared.Filter{}.Set("status", status))
}

// GetByID returns one category
func (s *CategoryService) GetByID(ctx context.Context, id string) (*catalog.Category, error) {
	return shared.Get[catalog.Category](ctx, s.categoryRepo, id, "Category")
}

// Update replaces the name, image and status of a category
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (shared.UpdateResult, error) {
	category, err := catalog.NewCategory(req.Name, req.Image, catalog.Status(req.Status))
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Category](ctx, s.categoryRepo, id, shared.Changes{
		"name":   category.Name,
		"image":  category.Image,
		"status": category.Status,
	})
}

// Delete removes a category. Subcategories referencing it are left alone.
func (s *CategoryService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Category](ctx, s.categoryRepo, id)
}

// CreateSubcategory creates a new subcategory
func (s *CategoryService) CreateSubcategory(ctx context.Context, req SubcategoryRequest) (shared.InsertResult, error) {
	sub, err := catalog.NewSubcategory(req.Name, req.CategoryID, catalog.Status(req.Status))
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.subcategoryRepo.Create(ctx, sub)
}

// ListSubcategories returns subcategories, optionally of one category
func (s *CategoryService) ListSubcategories(ctx context.Context, categoryID string) ([]catalog.Subcategory, error) {
	return s.subcategoryRepo.FindAll(ctx, shared.Filter{}.Set("categoryId", categoryID))
}

// GetSubcategory returns one subcategory
func (s *CategoryService) GetSubcategory(ctx context.Context, id string) (*catalog.Subcategory, error) {
	return shared.Get[catalog.Subcategory](ctx, s.subcategoryRepo, id, "Subcategory")
}

// UpdateSubcategory replaces the name, status and parent reference
func (s *CategoryService) UpdateSubcategory(ctx context.Context, id string, req SubcategoryRequest) (shared.UpdateResult, error) {
	sub, err := catalog.NewSubcategory(req.Name, req.CategoryID, catalog.Status(req.Status))
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Subcategory](ctx, s.subcategoryRepo, id, shared.Changes{
		"name":       sub.Name,
		"status":     sub.Status,
		"categoryId": sub.CategoryID,
	})
}

// DeleteSubcategory removes a subcategory
func (s *CategoryService) DeleteSubcategory(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Subcategory](ctx, s.subcategoryRepo, id)
}
