package identity

// CreateUserRequest represents a sign-up sync from the storefront
type CreateUserRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo" binding:"max=2000"`
	Role  string `json:"role" binding:"omitempty,oneof=customer admin"`
}

// CreateUserResponse mirrors an insert, or reports an existing account with a nil id
type CreateUserResponse struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

// RoleResponse carries a user's role; Role is nil for unknown users
type RoleResponse struct {
	Role    *string `json:"role"`
	Message string  `json:"message,omitempty"`
}
