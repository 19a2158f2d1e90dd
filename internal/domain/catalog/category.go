package catalog

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level product grouping
type Category struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Status Status             `bson:"status" json:"status"`
}

// NewCategory creates a new category
func NewCategory(name, image string, status Status) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Category name is required")
	}
	return &Category{Name: name, Image: image, Status: status.orDefault()}, nil
}

// Subcategory belongs to a category through a loose string reference.
// The reference is not checked against the categories collection.
type Subcategory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Status     Status             `bson:"status" json:"status"`
	CategoryID string             `bson:"categoryId" json:"categoryId"`
}

// NewSubcategory creates a new subcategory
func NewSubcategory(name, categoryID string, status Status) (*Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Subcategory name is required")
	}
	return &Subcategory{Name: name, CategoryID: strings.TrimSpace(categoryID), Status: status.orDefault()}, nil
}
