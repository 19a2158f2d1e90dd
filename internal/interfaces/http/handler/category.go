package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// CategoryHandler handles category and subcategory endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /categories?status=
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// GetByID handles GET /categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	category, err := h.categoryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req catalogapp.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	result, err := h.categoryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateSubcategory handles POST /subcategories
func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	var req catalogapp.SubcategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.categoryService.CreateSubcategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListSubcategories handles GET /subcategories?categoryId=
func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.categoryService.ListSubcategories(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subcategories)
}

// GetSubcategory handles GET /subcategories/:id
func (h *CategoryHandler) GetSubcategory(c *gin.Context) {
	subcategory, err := h.categoryService.GetSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subcategory)
}

// UpdateSubcategory handles PUT /subcategories/:id
func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	var req catalogapp.SubcategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.categoryService.UpdateSubcategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteSubcategory handles DELETE /subcategories/:id
func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	result, err := h.categoryService.DeleteSubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
