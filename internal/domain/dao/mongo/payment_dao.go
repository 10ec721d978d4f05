package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/mapper"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// paymentDAO implements dao.PaymentDAO using MongoDB
type paymentDAO struct {
	collection *mongo.Collection
}

// NewPaymentDAO creates the payments collection DAO
func NewPaymentDAO(db *mongo.Database) dao.PaymentDAO {
	return &paymentDAO{collection: db.Collection(document.PaymentDocument{}.CollectionName())}
}

func (d *paymentDAO) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if _, err := d.collection.InsertOne(ctx, mapper.PaymentToDocument(payment)); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (d *paymentDAO) Update(ctx context.Context, payment *entity.Payment) error {
	oid, ok := parseID(payment.ID)
	if !ok {
		return errors.ErrNotFound.WithMessage("payment not found")
	}
	payment.UpdatedAt = time.Now()
	update, err := setDocument(mapper.PaymentToDocument(payment))
	if err != nil {
		return err
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.ErrNotFound.WithMessage("payment not found")
	}
	return nil
}

func (d *paymentDAO) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	return d.findOne(ctx, bson.M{"_id": oid})
}

func (d *paymentDAO) FindByOrder(ctx context.Context, orderID string) (*entity.Payment, error) {
	oid, ok := parseID(orderID)
	if !ok {
		return nil, nil
	}
	return d.findOne(ctx, bson.M{"order": oid})
}

func (d *paymentDAO) findOne(ctx context.Context, filter bson.M) (*entity.Payment, error) {
	var doc document.PaymentDocument
	err := d.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapper.PaymentToEntity(&doc), nil
}
