// Package docstore is the document-flavor counterpart of pkg/crud, backing
// the chat subsystem. Documents are schemaless at this layer: the collection's
// own validation is the only gate, ids are hex object ids, and there is no
// pagination or field-scoped operation.
package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tienda/pkg/crud"
)

// Repository is the persistence surface consumed by Handler.
type Repository interface {
	Create(ctx context.Context, data map[string]any) (map[string]any, error)
	FindByID(ctx context.Context, id string) (map[string]any, error)
	FindAll(ctx context.Context) ([]map[string]any, error)
	Update(ctx context.Context, id string, data map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Store implements Repository on one MongoDB collection.
type Store struct {
	entity string
	coll   *mongo.Collection
}

func NewStore(entity string, coll *mongo.Collection) *Store {
	return &Store{entity: entity, coll: coll}
}

func (s *Store) Create(ctx context.Context, data map[string]any) (map[string]any, error) {
	delete(data, "_id")
	res, err := s.coll.InsertOne(ctx, bson.M(data))
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		data["_id"] = oid.Hex()
	}
	return data, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc bson.M
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return normalize(doc), nil
}

func (s *Store) FindAll(ctx context.Context) ([]map[string]any, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, normalize(d))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &crud.NotFoundError{Entity: s.entity, ID: id}
	}
	delete(data, "_id")
	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M(data)})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, &crud.NotFoundError{Entity: s.entity, ID: id}
	}
	return s.FindByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, &crud.NotFoundError{Entity: s.entity, ID: id}
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, &crud.NotFoundError{Entity: s.entity, ID: id}
	}
	return true, nil
}

// normalize replaces the raw object id with its hex form so responses carry
// an opaque string identifier.
func normalize(doc bson.M) map[string]any {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
