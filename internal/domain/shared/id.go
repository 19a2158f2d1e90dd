package shared

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts an opaque hex identifier into an ObjectID.
// Malformed identifiers are reported as INVALID_ID so callers never reach
// the store with them.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, NewDomainError(ErrInvalidID.Code, "Invalid id format: "+raw)
	}
	return id, nil
}

// IsValidID reports whether raw is a well-formed identifier.
func IsValidID(raw string) bool {
	return primitive.IsValidObjectID(strings.TrimSpace(raw))
}
