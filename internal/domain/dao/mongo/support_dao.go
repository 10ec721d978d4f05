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

// supportDAO implements dao.SupportDAO using MongoDB
type supportDAO struct {
	collection *mongo.Collection
}

// NewSupportDAO creates the supports collection DAO
func NewSupportDAO(db *mongo.Database) dao.SupportDAO {
	return &supportDAO{collection: db.Collection(document.SupportDocument{}.CollectionName())}
}

func (d *supportDAO) Create(ctx context.Context, ticket *entity.Support) error {
	if ticket.ID == "" {
		ticket.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	if _, err := d.collection.InsertOne(ctx, mapper.SupportToDocument(ticket)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (d *supportDAO) Update(ctx context.Context, ticket *entity.Support) error {
	oid, ok := parseID(ticket.ID)
	if !ok {
		return errors.ErrNotFound.WithMessage("support ticket not found")
	}
	ticket.UpdatedAt = time.Now()
	update, err := setDocument(mapper.SupportToDocument(ticket))
	if err != nil {
		return err
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("support ticket not found")
	}
	return nil
}

func (d *supportDAO) FindByID(ctx context.Context, id string) (*entity.Support, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc document.SupportDocument
	err := d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.SupportToEntity(&doc), nil
}

func (d *supportDAO) ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Support, int64, error) {
	oid, ok := parseID(shopID)
	if !ok {
		return nil, 0, nil
	}
	filter := bson.M{"shop": oid, "is_solved": false}

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
		SetSort(bson.D{{Key: "time_asked", Value: 1}})

	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []*document.SupportDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	tickets := make([]*entity.Support, len(docs))
	for i, doc := range docs {
		tickets[i] = mapper.SupportToEntity(doc)
	}
	return tickets, total, nil
}
