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
)

// reviewDAO implements dao.ReviewDAO using MongoDB
type reviewDAO struct {
	collection *mongo.Collection
}

// NewReviewDAO creates the reviews collection DAO
func NewReviewDAO(db *mongo.Database) dao.ReviewDAO {
	return &reviewDAO{collection: db.Collection(document.ReviewDocument{}.CollectionName())}
}

func (d *reviewDAO) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	if _, err := d.collection.InsertOne(ctx, mapper.ReviewToDocument(review)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (d *reviewDAO) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc document.ReviewDocument
	err := d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.ReviewToEntity(&doc), nil
}

func (d *reviewDAO) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Review, int64, error) {
	oid, ok := parseID(shopID)
	if !ok {
		return nil, 0, nil
	}
	filter := bson.M{"shop": oid}

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

	var docs []*document.ReviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	reviews := make([]*entity.Review, len(docs))
	for i, doc := range docs {
		reviews[i] = mapper.ReviewToEntity(doc)
	}
	return reviews, total, nil
}

func (d *reviewDAO) ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error) {
	oid, ok := parseID(orderID)
	if !ok {
		return nil, nil
	}
	cursor, err := d.collection.Find(ctx, bson.M{"order": oid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*document.ReviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(docs))
	for i, doc := range docs {
		reviews[i] = mapper.ReviewToEntity(doc)
	}
	return reviews, nil
}
