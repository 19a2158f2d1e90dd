package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/identity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository implements identity.UserRepository
type UserRepository struct {
	collection[identity.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{newCollection[identity.User](db, CollUsers, "User")}
}

// FindByEmail finds a user by exact email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}
