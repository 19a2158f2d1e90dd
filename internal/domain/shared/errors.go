package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so that wrapped sentinels with a custom
// message still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidID      = NewDomainError("INVALID_ID", "Invalid identifier format")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrCouponRejected = NewDomainError("COUPON_REJECTED", "Coupon cannot be applied")
)

// NotFoundError returns a NOT_FOUND error with a resource specific message.
func NotFoundError(resource string) *DomainError {
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf("%s not found", resource))
}

// InvalidInputError returns an INVALID_INPUT error with the given message.
func InvalidInputError(message string) *DomainError {
	return NewDomainError(ErrInvalidInput.Code, message)
}

// AlreadyExistsError returns an ALREADY_EXISTS error for a resource/field pair.
func AlreadyExistsError(resource, field, value string) *DomainError {
	return NewDomainError(ErrAlreadyExists.Code, fmt.Sprintf("%s with %s %q already exists", resource, field, value))
}
