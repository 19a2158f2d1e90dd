package shared

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the base interface for document repositories
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) (InsertResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Update(ctx context.Context, id primitive.ObjectID, changes Changes) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

// Changes is a field-level set of document updates keyed by stored field name
type Changes map[string]any

// InsertResult mirrors a single-document insert acknowledgement
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors a single-document update acknowledgement
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors a delete acknowledgement
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Filter is a set of equality predicates on document fields.
// Empty values are skipped so optional query parameters can be passed through.
type Filter map[string]string

// Set adds a predicate when value is not empty and returns the filter
func (f Filter) Set(field, value string) Filter {
	if value != "" {
		f[field] = value
	}
	return f
}

// Get parses rawID and loads the record, naming resource in not-found errors
func Get[T any](ctx context.Context, repo Repository[T], rawID, resource string) (*T, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	entity, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFoundError(resource)
		}
		return nil, err
	}
	return entity, nil
}

// Modify parses rawID and applies changes. A missing record yields a zero match count.
func Modify[T any](ctx context.Context, repo Repository[T], rawID string, changes Changes) (UpdateResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return UpdateResult{}, err
	}
	return repo.Update(ctx, id, changes)
}

// Remove parses rawID and deletes the record. A missing record yields a zero delete count.
func Remove[T any](ctx context.Context, repo Repository[T], rawID string) (DeleteResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return DeleteResult{}, err
	}
	return repo.Delete(ctx, id)
}
