package identity

import (
	"context"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents the role of a storefront user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a storefront account. Role stays empty until an explicit promotion.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

// NewUser creates a user keyed by email
func NewUser(name, email, photo string, role Role) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, shared.InvalidInputError("Email is required")
	}
	return &User{
		Name:  strings.TrimSpace(name),
		Email: email,
		Photo: photo,
		Role:  role,
	}, nil
}

// IsAdmin reports whether the user has been promoted
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	shared.Repository[User]

	// FindByEmail finds a user by exact email, shared.ErrNotFound if absent
	FindByEmail(ctx context.Context, email string) (*User, error)
}
