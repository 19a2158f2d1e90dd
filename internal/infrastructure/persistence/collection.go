package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/storefront/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// collection implements shared.Repository[T] over one MongoDB collection.
// Entity-specific repositories embed it and add their own queries.
type collection[T any] struct {
	coll     *mongo.Collection
	resource string
	sort     bson.D
}

func newCollection[T any](db *mongo.Database, name, resource string) collection[T] {
	return collection[T]{coll: db.Collection(name), resource: resource}
}

func (c collection[T]) sorted(sort bson.D) collection[T] {
	c.sort = sort
	return c
}

// Create inserts entity and reports the generated id
func (c collection[T]) Create(ctx context.Context, entity *T) (shared.InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, entity)
	if err != nil {
		return shared.InsertResult{}, c.translate(err, "insert")
	}
	return shared.InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}, nil
}

// FindByID returns shared.ErrNotFound when no document has the id
func (c collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// FindAll lists documents matching every filter field exactly
func (c collection[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	return c.find(ctx, query)
}

// Update applies $set with the given changes
func (c collection[T]) Update(ctx context.Context, id primitive.ObjectID, changes shared.Changes) (shared.UpdateResult, error) {
	if len(changes) == 0 {
		n, err := c.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return shared.UpdateResult{}, c.translate(err, "count")
		}
		return shared.UpdateResult{Acknowledged: true, MatchedCount: n}, nil
	}
	return c.updateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(changes)})
}

// Delete removes the document with the id
func (c collection[T]) Delete(ctx context.Context, id primitive.ObjectID) (shared.DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return shared.DeleteResult{}, c.translate(err, "delete")
	}
	return shared.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var entity T
	if err := c.coll.FindOne(ctx, filter).Decode(&entity); err != nil {
		return nil, c.translate(err, "find")
	}
	return &entity, nil
}

func (c collection[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	opts := options.Find()
	if len(c.sort) > 0 {
		opts.SetSort(c.sort)
	}
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, c.translate(err, "find")
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, c.translate(err, "decode")
	}
	return items, nil
}

func (c collection[T]) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := c.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, c.translate(err, "count")
	}
	return n > 0, nil
}

func (c collection[T]) updateOne(ctx context.Context, filter, update bson.M) (shared.UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return shared.UpdateResult{}, c.translate(err, "update")
	}
	return shared.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (c collection[T]) deleteMany(ctx context.Context, filter bson.M) (shared.DeleteResult, error) {
	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return shared.DeleteResult{}, c.translate(err, "delete")
	}
	return shared.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// translate maps driver errors onto domain errors
func (c collection[T]) translate(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return shared.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return shared.NewDomainError(shared.ErrAlreadyExists.Code, c.resource+" already exists")
	default:
		return fmt.Errorf("%s %s: %w", c.coll.Name(), op, err)
	}
}

func hexID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(v)
	}
}
