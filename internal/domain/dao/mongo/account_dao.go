package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// accountDAO implements dao.AccountDAO for one account collection. All four
// account types share this implementation; only the collection name and the
// document mapping differ.
type accountDAO[T entity.Credentialed, D any] struct {
	collection *mongo.Collection
	toDocument func(T) *D
	toEntity   func(*D) T
}

func newAccountDAO[T entity.Credentialed, D any](
	db *mongo.Database,
	collectionName string,
	toDocument func(T) *D,
	toEntity func(*D) T,
) *accountDAO[T, D] {
	return &accountDAO[T, D]{
		collection: db.Collection(collectionName),
		toDocument: toDocument,
		toEntity:   toEntity,
	}
}

// Create inserts a new account, assigning its id and timestamps
func (d *accountDAO[T, D]) Create(ctx context.Context, acct T) error {
	acc := acct.GetAccount()
	if acc.ID == "" {
		acc.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	if _, err := d.collection.InsertOne(ctx, d.toDocument(acct)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Update replaces the stored account by id
func (d *accountDAO[T, D]) Update(ctx context.Context, acct T) error {
	acc := acct.GetAccount()
	oid, ok := parseID(acc.ID)
	if !ok {
		return errors.ErrNotFound.WithMessage("account not found")
	}
	acc.UpdatedAt = time.Now()

	update, err := setDocument(d.toDocument(acct))
	if err != nil {
		return err
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return mapWriteError(err)
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("account not found")
	}
	return nil
}

func (d *accountDAO[T, D]) findOne(ctx context.Context, filter bson.M) (T, error) {
	var zero T
	var doc D
	err := d.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return d.toEntity(&doc), nil
}

// FindActiveByID retrieves an active account by id
func (d *accountDAO[T, D]) FindActiveByID(ctx context.Context, id string) (T, error) {
	oid, ok := parseID(id)
	if !ok {
		var zero T
		return zero, nil
	}
	return d.findOne(ctx, withActiveOnly(bson.M{"_id": oid}))
}

// FindActiveByField retrieves an active account by an exact field match
func (d *accountDAO[T, D]) FindActiveByField(ctx context.Context, field, value string) (T, error) {
	return d.findOne(ctx, withActiveOnly(bson.M{field: value}))
}

// FindConflicting retrieves an active account holding value in the given
// unique field, excluding excludeID when set
func (d *accountDAO[T, D]) FindConflicting(ctx context.Context, field, value, excludeID string) (T, error) {
	filter := withActiveOnly(bson.M{field: value})
	if excludeID != "" {
		if oid, ok := parseID(excludeID); ok {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	return d.findOne(ctx, filter)
}

// ListActive retrieves active accounts matching the filter, paginated
func (d *accountDAO[T, D]) ListActive(ctx context.Context, filter dao.Filter, page, size int) ([]T, int64, error) {
	query := activeOnlyFilter()
	for field, value := range filter {
		query[field] = value
	}

	total, err := d.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	opts := options.Find().
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := d.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []*D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	results := make([]T, len(docs))
	for i, doc := range docs {
		results[i] = d.toEntity(doc)
	}
	return results, total, nil
}

// CountActive returns the number of active accounts
func (d *accountDAO[T, D]) CountActive(ctx context.Context) (int64, error) {
	return d.collection.CountDocuments(ctx, activeOnlyFilter())
}

// Deactivate flips the soft-delete flag. The record stays in place for the
// transaction entities that reference it.
func (d *accountDAO[T, D]) Deactivate(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return errors.ErrNotFound.WithMessage("account not found")
	}
	res, err := d.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("account not found")
	}
	return nil
}

// HardDelete physically removes a record (unverified-slot reclaim only)
func (d *accountDAO[T, D]) HardDelete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return errors.ErrNotFound.WithMessage("account not found")
	}
	_, err := d.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// FindAnyByID retrieves an account regardless of the active flag
func (d *accountDAO[T, D]) FindAnyByID(ctx context.Context, id string) (T, error) {
	oid, ok := parseID(id)
	if !ok {
		var zero T
		return zero, nil
	}
	return d.findOne(ctx, bson.M{"_id": oid})
}
