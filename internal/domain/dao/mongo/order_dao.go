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

// orderDAO implements dao.OrderDAO using MongoDB. Orders are historical
// records and have no soft-delete surface.
type orderDAO struct {
	collection *mongo.Collection
}

// NewOrderDAO creates the orders collection DAO
func NewOrderDAO(db *mongo.Database) dao.OrderDAO {
	return &orderDAO{collection: db.Collection(document.OrderDocument{}.CollectionName())}
}

func (d *orderDAO) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if _, err := d.collection.InsertOne(ctx, mapper.OrderToDocument(order)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (d *orderDAO) Update(ctx context.Context, order *entity.Order) error {
	oid, ok := parseID(order.ID)
	if !ok {
		return errors.ErrNotFound.WithMessage("order not found")
	}
	order.UpdatedAt = time.Now()
	update, err := setDocument(mapper.OrderToDocument(order))
	if err != nil {
		return err
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("order not found")
	}
	return nil
}

func (d *orderDAO) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc document.OrderDocument
	err := d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.OrderToEntity(&doc), nil
}

func (d *orderDAO) ListByUser(ctx context.Context, userID string, page, size int) ([]*entity.Order, int64, error) {
	return d.listByRef(ctx, "user", userID, page, size)
}

func (d *orderDAO) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Order, int64, error) {
	return d.listByRef(ctx, "shop", shopID, page, size)
}

func (d *orderDAO) listByRef(ctx context.Context, field, id string, page, size int) ([]*entity.Order, int64, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, 0, nil
	}
	filter := bson.M{field: oid}

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

	var docs []*document.OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	orders := make([]*entity.Order, len(docs))
	for i, doc := range docs {
		orders[i] = mapper.OrderToEntity(doc)
	}
	return orders, total, nil
}
