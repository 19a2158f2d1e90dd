package catalog

import "github.com/storefront/backend/internal/domain/shared"

// CategoryRequest creates or replaces a category
type CategoryRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Image  string `json:"image" binding:"max=2000"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// SubcategoryRequest creates or replaces a subcategory
type SubcategoryRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive"`
	CategoryID string `json:"categoryId" binding:"required,objectid"`
}

// BrandRequest creates or replaces a brand
type BrandRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Logo   string `json:"logo" binding:"max=2000"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// SizeRequest creates or replaces a size
type SizeRequest struct {
	Name   string `json:"name" binding:"required,max=50"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ColorRequest creates or replaces a color
type ColorRequest struct {
	Name   string `json:"name" binding:"required,max=50"`
	Hex    string `json:"hex" binding:"omitempty,hexcolor"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ProductRequest creates or fully replaces a product
type ProductRequest struct {
	Name          string        `json:"name" binding:"required,max=200"`
	Description   string        `json:"description" binding:"max=5000"`
	Specification string        `json:"specification" binding:"max=5000"`
	CategoryID    string        `json:"categoryId" binding:"omitempty,objectid"`
	SubcategoryID string        `json:"subcategoryId" binding:"omitempty,objectid"`
	BrandID       string        `json:"brandId" binding:"omitempty,objectid"`
	Sizes         []string      `json:"sizes"`
	Colors        []string      `json:"colors"`
	PurchasePrice shared.Amount `json:"purchasePrice"`
	OldPrice      shared.Amount `json:"oldPrice"`
	NewPrice      shared.Amount `json:"newPrice"`
	Stock         int           `json:"stock" binding:"min=0"`
	Status        string        `json:"status" binding:"omitempty,oneof=active inactive"`
	Variant       string        `json:"variant" binding:"max=100"`
	Images        []string      `json:"images"`
	Email         string        `json:"email" binding:"omitempty,email"`
}

// ProductFilter carries the product list query parameters
type ProductFilter struct {
	CategoryID    string `form:"categoryId"`
	SubcategoryID string `form:"subcategoryId"`
	BrandID       string `form:"brandId"`
	Status        string `form:"status"`
	Search        string `form:"search"`
}

// StatusRequest changes only the status field of a record
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// ReviewRequest creates a review
type ReviewRequest struct {
	ProductID string `json:"productId" binding:"required,objectid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Text      string `json:"text" binding:"max=2000"`
	Name      string `json:"name" binding:"max=200"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// ReviewFilter carries the review list query parameters
type ReviewFilter struct {
	ProductID string `form:"productId"`
	Email     string `form:"email"`
}
