package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ImageFormField is the multipart field carrying a product image
const ImageFormField = "image"

// ProductHandler handles product, product image and review endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	mediaService   *catalogapp.MediaService
}

// NewProductHandler creates a new ProductHandler. mediaService may be nil
// when object storage is disabled.
func NewProductHandler(productService *catalogapp.ProductService, mediaService *catalogapp.MediaService) *ProductHandler {
	return &ProductHandler{productService: productService, mediaService: mediaService}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /products with optional category, subcategory, brand,
// status and search filters
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetByID handles GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req catalogapp.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateStatus handles PATCH /products/:id/status
func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	var req catalogapp.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.productService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	result, err := h.productService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UploadImage handles POST /products/images (multipart field "image")
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if h.mediaService == nil {
		h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeServiceUnavailable, "Image storage is not configured")
		return
	}

	header, err := c.FormFile(ImageFormField)
	if err != nil {
		h.bindError(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	resp, err := h.mediaService.UploadProductImage(c.Request.Context(), catalogapp.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// CreateReview handles POST /reviews
func (h *ProductHandler) CreateReview(c *gin.Context) {
	var req catalogapp.ReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.productService.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// ListReviews handles GET /reviews?productId&email, newest first
func (h *ProductHandler) ListReviews(c *gin.Context) {
	var filter catalogapp.ReviewFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	reviews, err := h.productService.ListReviews(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reviews)
}

// DeleteReview handles DELETE /reviews/:id
func (h *ProductHandler) DeleteReview(c *gin.Context) {
	result, err := h.productService.DeleteReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
