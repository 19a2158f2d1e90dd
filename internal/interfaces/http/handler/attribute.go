package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// AttributeHandler serves brands, sizes and colors
type AttributeHandler struct {
	BaseHandler
	attributeService *catalogapp.AttributeService
}

// NewAttributeHandler creates a new AttributeHandler
func NewAttributeHandler(attributeService *catalogapp.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// CreateBrand handles POST /brands
func (h *AttributeHandler) CreateBrand(c *gin.Context) {
	var req catalogapp.BrandRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *AttributeHandler) ListBrands(c *gin.Context) {
	brands, err := h.attributeService.ListBrands(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brands)
}

func (h *AttributeHandler) GetBrand(c *gin.Context) {
	brand, err := h.attributeService.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brand)
}

func (h *AttributeHandler) UpdateBrand(c *gin.Context) {
	var req catalogapp.BrandRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.UpdateBrand(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *AttributeHandler) DeleteBrand(c *gin.Context) {
	result, err := h.attributeService.DeleteBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateSize handles POST /sizes
func (h *AttributeHandler) CreateSize(c *gin.Context) {
	var req catalogapp.SizeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.CreateSize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *AttributeHandler) ListSizes(c *gin.Context) {
	sizes, err := h.attributeService.ListSizes(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sizes)
}

func (h *AttributeHandler) GetSize(c *gin.Context) {
	size, err := h.attributeService.GetSize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, size)
}

func (h *AttributeHandler) UpdateSize(c *gin.Context) {
	var req catalogapp.SizeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.UpdateSize(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *AttributeHandler) DeleteSize(c *gin.Context) {
	result, err := h.attributeService.DeleteSize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateColor handles POST /colors
func (h *AttributeHandler) CreateColor(c *gin.Context) {
	var req catalogapp.ColorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.CreateColor(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *AttributeHandler) ListColors(c *gin.Context) {
	colors, err := h.attributeService.ListColors(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, colors)
}

func (h *AttributeHandler) GetColor(c *gin.Context) {
	color, err := h.attributeService.GetColor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, color)
}

func (h *AttributeHandler) UpdateColor(c *gin.Context) {
	var req catalogapp.ColorRequest
	if !h.BindJSON(c, &req) {
		return
	}
	result, err := h.attributeService.UpdateColor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *AttributeHandler) DeleteColor(c *gin.Context) {
	result, err := h.attributeService.DeleteColor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
