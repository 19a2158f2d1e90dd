package identity

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// MsgUserExists is returned instead of an error when the email is taken
const MsgUserExists = "User already exists"

// UserService handles user-related operations
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create stores a user unless the email is already registered.
// A duplicate is not an error: the response carries a nil insertedId.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	user, err := identity.NewUser(req.Name, req.Email, req.Photo, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	_, err = s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return &CreateUserResponse{Acknowledged: true, Message: MsgUserExists}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	result, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return &CreateUserResponse{Acknowledged: result.Acknowledged, InsertedID: &result.InsertedID}, nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]identity.User, error) {
	return s.userRepo.FindAll(ctx, shared.Filter{})
}

// GetRole looks up the role for an email
func (s *UserService) GetRole(ctx context.Context, email string) (*RoleResponse, error) {
	if email == "" {
		return nil, shared.InvalidInputError("Email query parameter is required")
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFoundError("User")
		}
		return nil, err
	}
	if user.Role == "" {
		return &RoleResponse{}, nil
	}
	role := string(user.Role)
	return &RoleResponse{Role: &role}, nil
}

// MakeAdmin promotes a user to admin
func (s *UserService) MakeAdmin(ctx context.Context, id string) (shared.UpdateResult, error) {
	return shared.Modify[identity.User](ctx, s.userRepo, id, shared.Changes{"role": identity.RoleAdmin})
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id string) (shared.DeleteResult, error) {
	return shared.Remove[identity.User](ctx, s.userRepo, id)
}
