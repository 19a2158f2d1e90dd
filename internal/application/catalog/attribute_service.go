package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// AttributeService handles brands, sizes and colors
type AttributeService struct {
	brandRepo catalog.BrandRepository
	sizeRepo  catalog.SizeRepository
	colorRepo catalog.ColorRepository
}

// NewAttributeService creates a new AttributeService
func NewAttributeService(
	brandRepo catalog.BrandRepository,
	sizeRepo catalog.SizeRepository,
	colorRepo catalog.ColorRepository,
) *AttributeService {
	return &AttributeService{
		brandRepo: brandRepo,
		sizeRepo:  sizeRepo,
		colorRepo: colorRepo,
	}
}

// CreateBrand creates a brand with a unique name
func (s *AttributeService) CreateBrand(ctx context.Context, req BrandRequest) (shared.InsertResult, error) {
	brand, err := catalog.NewBrand(req.Name, req.Logo, catalog.Status(req.Status))
	if err != nil {
		return shared.InsertResult{}, err
	}
	exists, err := s.brandRepo.ExistsByName(ctx, brand.Name)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if exists {
		return shared.InsertResult{}, shared.AlreadyExistsError("Brand", "name", brand.Name)
	}
	return s.brandRepo.Create(ctx, brand)
}

// ListBrands returns brands, optionally filtered by status
func (s *AttributeService) ListBrands(ctx context.Context, status string) ([]catalog.Brand, error) {
	return s.brandRepo.FindAll(ctx, shared.Filter{}.Set("status", status))
}

// GetBrand returns one brand
func (s *AttributeService) GetBrand(ctx context.Context, id string) (*catalog.Brand, error) {
	return shared.Get[catalog.Brand](ctx, s.brandRepo, id, "Brand")
}

// UpdateBrand replaces a brand's fields
func (s *AttributeService) UpdateBrand(ctx context.Context, id string, req BrandRequest) (shared.UpdateResult, error) {
	brand, err := catalog.NewBrand(req.Name, req.Logo, catalog.Status(req.Status))
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Brand](ctx, s.brandRepo, id, shared.Changes{
		"name":   brand.Name,
		"logo":   brand.Logo,
		"status": brand.Status,
	})
}

// DeleteBrand removes a brand
func (s *AttributeService) DeleteBrand(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Brand](ctx, s.brandRepo, id)
}

// CreateSize creates a size
func (s *AttributeService) CreateSize(ctx context.Context, req SizeRequest) (shared.InsertResult, error) {
	size, err := catalog.NewSize(req.Name, catalog.Status(req.Status))
	if err != nil {
		return shared.InsertResult{}, err
	}
	return s.sizeRepo.Create(ctx, size)
}

// ListSizes returns sizes, optionally filtered by status
func (s *AttributeService) ListSizes(ctx context.Context, status string) ([]catalog.Size, error) {
	return s.sizeRepo.FindAll(ctx, shared.Filter{}.Set("status", status))
}

// GetSize returns one size
func (s *AttributeService) GetSize(ctx context.Context, id string) (*catalog.Size, error) {
	return shared.Get[catalog.Size](ctx, s.sizeRepo, id, "Size")
}

// UpdateSize replaces a size's fields
func (s *AttributeService) UpdateSize(ctx context.Context, id string, req SizeRequest) (shared.UpdateResult, error) {
	size, err := catalog.NewSize(req.Name, catalog.Status(req.Status))
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Size](ctx, s.sizeRepo, id, shared.Changes{
		"name":   size.Name,
		"status": size.Status,
	})
}

// DeleteSize removes a size
func (s *AttributeService) DeleteSize(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Size](ctx, s.sizeRepo, id)
}

// CreateColor creates a color with a unique name
func (s *AttributeService) CreateColor(ctx context.Context, req ColorRequest) (shared.InsertResult, error) {
	color, err := catalog.NewColor(req.Name, req.Hex, catalog.Status(req.Status))
	if err != nil {
		return shared.InsertResult{}, err
	}
	exists, err := s.colorRepo.ExistsByName(ctx, color.Name)
	if err != nil {
		return shared.InsertResult{}, err
	}
	if exists {
		return shared.InsertResult{}, shared.AlreadyExistsError("Color", "name", color.Name)
	}
	return s.colorRepo.Create(ctx, color)
}

// ListColors returns colors, optionally filtered by status
func (s *AttributeService) ListColors(ctx context.Context, status string) ([]catalog.Color, error) {
	return s.colorRepo.FindAll(ctx, shared.Filter{}.Set("status", status))
}

// GetColor returns one color
func (s *AttributeService) GetColor(ctx context.Context, id string) (*catalog.Color, error) {
	return shared.Get[catalog.Color](ctx, s.colorRepo, id, "Color")
}

// UpdateColor replaces a color's fields
func (s *AttributeService) UpdateColor(ctx context.Context, id string, req ColorRequest) (shared.UpdateResult, error) {
	color, err := catalog.NewColor(req.Name, req.Hex, catalog.Status(req.Status))
	if err != nil {
		return shared.UpdateResult{}, err
	}
	return shared.Modify[catalog.Color](ctx, s.colorRepo, id, shared.Changes{
		"name":   color.Name,
		"hex":    color.Hex,
		"status": color.Status,
	})
}

// DeleteColor removes a color
func (s *AttributeService) DeleteColor(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[catalog.Color](ctx, s.colorRepo, id)
}
