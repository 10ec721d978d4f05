package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/mapper"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// itemDAO implements dao.ItemDAO using MongoDB
type itemDAO struct {
	collection *mongo.Collection
}

// NewItemDAO creates the items collection DAO
func NewItemDAO(db *mongo.Database) dao.ItemDAO {
	return &itemDAO{collection: db.Collection(document.ItemDocument{}.CollectionName())}
}

func (d *itemDAO) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := d.collection.InsertOne(ctx, mapper.ItemToDocument(item)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (d *itemDAO) Update(ctx context.Context, item *entity.Item) error {
	oid, ok := parseID(item.ID)
	if !ok {
		return errors.ErrNotFound.WithMessage("item not found")
	}
	item.UpdatedAt = time.Now()
	update, err := setDocument(mapper.ItemToDocument(item))
	if err != nil {
		return err
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("item not found")
	}
	return nil
}

func (d *itemDAO) FindActiveByID(ctx context.Context, id string) (*entity.Item, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc document.ItemDocument
	err := d.collection.FindOne(ctx, withActiveOnly(bson.M{"_id": oid})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.ItemToEntity(&doc), nil
}

func (d *itemDAO) ListActiveByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Item, int64, error) {
	oid, ok := parseID(shopID)
	if !ok {
		return nil, 0, nil
	}
	filter := withActiveOnly(bson.M{"shop": oid})

	total, err := d.collection.CountDocuments(ctx, filter)
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

	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []*document.ItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	items := make([]*entity.Item, len(docs))
	for i, doc := range docs {
		items[i] = mapper.ItemToEntity(doc)
	}
	return items, total, nil
}

func (d *itemDAO) Deactivate(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return errors.ErrNotFound.WithMessage("item not found")
	}
	res, err := d.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("item not found")
	}
	return nil
}
