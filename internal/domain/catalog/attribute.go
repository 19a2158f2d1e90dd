package catalog

import (
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// Brand is a product manufacturer. Names are unique.
type Brand struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Logo   string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Status Status             `bson:"status" json:"status"`
}

// NewBrand creates a new brand
func NewBrand(name, logo string, status Status) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Brand name is required")
	}
	return &Brand{Name: name, Logo: logo, Status: status.orDefault()}, nil
}

// Size is a selectable product size
type Size struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Status Status             `bson:"status" json:"status"`
}

// NewSize creates a new size
func NewSize(name string, status Status) (*Size, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Size name is required")
	}
	return &Size{Name: name, Status: status.orDefault()}, nil
}

// Color is a selectable product color. Names are unique.
type Color struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Hex    string             `bson:"hex" json:"hex"`
	Status Status             `bson:"status" json:"status"`
}

// NewColor creates a new color, validating the hex code when present
func NewColor(name, hex string, status Status) (*Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.InvalidInputError("Color name is required")
	}
	hex = strings.TrimSpace(hex)
	if hex != "" && !hexColorPattern.MatchString(hex) {
		return nil, shared.InvalidInputError("Color hex must look like #RRGGBB")
	}
	return &Color{Name: name, Hex: hex, Status: status.orDefault()}, nil
}

// ValidHex reports whether hex is an accepted color code
func ValidHex(hex string) bool {
	return hexColorPattern.MatchString(hex)
}
