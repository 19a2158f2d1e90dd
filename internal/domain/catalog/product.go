package catalog

import (
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a sellable catalog item.
// Stock changes only through order fulfillment and POS sales.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Specification string             `bson:"specification,omitempty" json:"specification,omitempty"`
	CategoryID    string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	SubcategoryID string             `bson:"subcategoryId,omitempty" json:"subcategoryId,omitempty"`
	BrandID       string             `bson:"brandId,omitempty" json:"brandId,omitempty"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors" json:"colors"`
	PurchasePrice shared.Amount      `bson:"purchasePrice" json:"purchasePrice"`
	OldPrice      shared.Amount      `bson:"oldPrice" json:"oldPrice"`
	NewPrice      shared.Amount      `bson:"newPrice" json:"newPrice"`
	Stock         int                `bson:"stock" json:"stock"`
	Status        Status             `bson:"status" json:"status"`
	Variant       string             `bson:"variant,omitempty" json:"variant,omitempty"`
	Images        []string           `bson:"images" json:"images"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate checks the invariants a product must hold before it is stored
func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return shared.InvalidInputError("Product name is required")
	}
	if p.Stock < 0 {
		return shared.InvalidInputError("Initial stock cannot be negative")
	}
	if p.NewPrice < 0 || p.OldPrice < 0 || p.PurchasePrice < 0 {
		return shared.InvalidInputError("Prices cannot be negative")
	}
	p.Status = p.Status.orDefault()
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return nil
}

// ProductQuery narrows a product listing.
// Search is a case-insensitive substring match on the product name.
type ProductQuery struct {
	CategoryID    string
	SubcategoryID string
	BrandID       string
	Status        string
	Search        string
}

// Review is a customer rating of a product; immutable once written
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID string             `bson:"productId" json:"productId"`
	Rating    int                `bson:"rating" json:"rating"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewReview creates a review stamped with the given time
func NewReview(productID string, rating int, text, name, email string, now time.Time) (*Review, error) {
	if !shared.IsValidID(productID) {
		return nil, shared.NewDomainError(shared.ErrInvalidID.Code, "Invalid product id format")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.InvalidInputError("Rating must be between 1 and 5")
	}
	return &Review{
		ProductID: strings.TrimSpace(productID),
		Rating:    rating,
		Text:      strings.TrimSpace(text),
		Name:      name,
		Email:     email,
		CreatedAt: now,
	}, nil
}
