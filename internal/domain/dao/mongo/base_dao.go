// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

// activeOnlyFilter returns the predicate that hides soft-deleted documents.
// It is conjoined explicitly by every read-style DAO method rather than
// installed as a global query interceptor, so each query's semantics stay
// visible at its call site.
func activeOnlyFilter() bson.M {
	return bson.M{"is_active": bson.M{"$ne": false}}
}

// withActiveOnly adds the active-only condition to an existing filter
func withActiveOnly(filter bson.M) bson.M {
	filter["is_active"] = bson.M{"$ne": false}
	return filter
}

// parseID parses an entity id. Malformed ids address no stored document.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// setDocument renders a document struct as a $set payload without its _id,
// which MongoDB treats as immutable.
func setDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	return m, nil
}

// mapWriteError translates storage-level write failures into the application
// taxonomy. A unique-index violation is the losing side of a registration
// race and surfaces as a conflict.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(err, errors.ErrConflict)
	}
	return err
}
