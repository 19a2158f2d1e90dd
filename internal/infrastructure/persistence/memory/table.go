// Package memory is an in-process document store with the same repository
// contracts as the MongoDB implementation. Documents are kept as BSON maps so
// loosely typed values behave the way they do in the real store.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type table struct {
	mu   sync.RWMutex
	docs []bson.M
}

// collection implements shared.Repository[T] over a table
type collection[T any] struct {
	t        *table
	resource string
	// unique lists fields that reject duplicate values, like a unique index
	unique []string
	// newestBy sorts listings descending on a date field when set
	newestBy string
}

func newCollection[T any](resource string, unique ...string) collection[T] {
	return collection[T]{t: &table{}, resource: resource, unique: unique}
}

func (c collection[T]) newest(field string) collection[T] {
	c.newestBy = field
	return c
}

// Create stores a copy of entity, generating _id when absent
func (c collection[T]) Create(_ context.Context, entity *T) (shared.InsertResult, error) {
	doc, err := toDoc(entity)
	if err != nil {
		return shared.InsertResult{}, err
	}
	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}

	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	if err := c.checkUnique(doc, -1); err != nil {
		return shared.InsertResult{}, err
	}
	c.t.docs = append(c.t.docs, doc)
	return shared.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// FindByID returns shared.ErrNotFound when no document has the id
func (c collection[T]) FindByID(_ context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(func(d bson.M) bool { return d["_id"] == id })
}

// FindAll lists documents whose string fields equal every filter value
func (c collection[T]) FindAll(_ context.Context, filter shared.Filter) ([]T, error) {
	return c.find(func(d bson.M) bool {
		for k, v := range filter {
			if !stringEquals(d, k, v) {
				return false
			}
		}
		return true
	})
}

// Update sets the changed fields; ModifiedCount is zero when nothing changed
func (c collection[T]) Update(_ context.Context, id primitive.ObjectID, changes shared.Changes) (shared.UpdateResult, error) {
	return c.mutate(func(d bson.M) bool { return d["_id"] == id }, func(d bson.M) error {
		for k, v := range changes {
			d[k] = v
		}
		return nil
	})
}

// Delete removes the document with the id
func (c collection[T]) Delete(_ context.Context, id primitive.ObjectID) (shared.DeleteResult, error) {
	return c.deleteWhere(func(d bson.M) bool { return d["_id"] == id }, true), nil
}

func (c collection[T]) findOne(match func(bson.M) bool) (*T, error) {
	c.t.mu.RLock()
	defer c.t.mu.RUnlock()
	for _, d := range c.t.docs {
		if match(d) {
			return fromDoc[T](d)
		}
	}
	return nil, shared.ErrNotFound
}

func (c collection[T]) find(match func(bson.M) bool) ([]T, error) {
	c.t.mu.RLock()
	matched := make([]bson.M, 0, len(c.t.docs))
	for _, d := range c.t.docs {
		if match(d) {
			matched = append(matched, d)
		}
	}
	c.t.mu.RUnlock()

	if c.newestBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return dateOf(matched[i], c.newestBy) > dateOf(matched[j], c.newestBy)
		})
	}

	items := make([]T, 0, len(matched))
	for _, d := range matched {
		item, err := fromDoc[T](d)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (c collection[T]) exists(match func(bson.M) bool) bool {
	c.t.mu.RLock()
	defer c.t.mu.RUnlock()
	for _, d := range c.t.docs {
		if match(d) {
			return true
		}
	}
	return false
}

// mutate applies fn to the first matching document. The document is
// re-normalized through BSON so stored values keep their wire types.
func (c collection[T]) mutate(match func(bson.M) bool, fn func(bson.M) error) (shared.UpdateResult, error) {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	for i, d := range c.t.docs {
		if !match(d) {
			continue
		}
		working := cloneDoc(d)
		if err := fn(working); err != nil {
			return shared.UpdateResult{}, err
		}
		after, err := bson.Marshal(working)
		if err != nil {
			return shared.UpdateResult{}, err
		}
		var normalized bson.M
		if err := bson.Unmarshal(after, &normalized); err != nil {
			return shared.UpdateResult{}, err
		}
		if err := c.checkUnique(normalized, i); err != nil {
			return shared.UpdateResult{}, err
		}
		c.t.docs[i] = normalized

		result := shared.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if !reflect.DeepEqual(d, normalized) {
			result.ModifiedCount = 1
		}
		return result, nil
	}
	return shared.UpdateResult{Acknowledged: true}, nil
}

func (c collection[T]) deleteWhere(match func(bson.M) bool, one bool) shared.DeleteResult {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	kept := c.t.docs[:0]
	var deleted int64
	for _, d := range c.t.docs {
		if match(d) && (!one || deleted == 0) {
			deleted++
			continue
		}
		kept = append(kept, d)
	}
	c.t.docs = kept
	return shared.DeleteResult{Acknowledged: true, DeletedCount: deleted}
}

// checkUnique must be called with the write lock held. skip is the index
// of the document being replaced, or -1 for inserts.
func (c collection[T]) checkUnique(doc bson.M, skip int) error {
	for _, field := range c.unique {
		v, ok := doc[field]
		if !ok {
			continue
		}
		for i, other := range c.t.docs {
			if i != skip && other[field] == v {
				return shared.NewDomainError(shared.ErrAlreadyExists.Code, c.resource+" already exists")
			}
		}
	}
	return nil
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func fromDoc[T any](doc bson.M) (*T, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}

func cloneDoc(d bson.M) bson.M {
	out := make(bson.M, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func stringEquals(d bson.M, field, value string) bool {
	s, ok := d[field].(string)
	return ok && s == value
}

func dateOf(d bson.M, field string) primitive.DateTime {
	dt, _ := d[field].(primitive.DateTime)
	return dt
}
