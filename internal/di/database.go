package di

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/config"
	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
)

// MongoDatabase wraps the MongoDB handle shared by the DAO layer
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides the MongoDB connection and bootstraps indexes
var DatabaseModule = fx.Module("database",
	fx.Provide(provideMongoDatabase),
	fx.Invoke(ensureIndexes),
)

func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	logger.Info("connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name))

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("disconnecting from MongoDB")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: client.Database(cfg.Name), Client: client}, nil
}

// indexSpec pairs a unique field with the flag that makes its claim
// authoritative.
type indexSpec struct {
	field        string
	verifiedFlag string
}

// accountIndexSpecs lists the unique fields per account collection. The
// indexes are partial: only verified, active documents hold a slot, so
// unverified duplicates can coexist until one of them proves the identifier.
func accountIndexSpecs() map[string][]indexSpec {
	shared := []indexSpec{
		{dao.FieldEmail, "is_email_verified"},
		{dao.FieldPhone, "is_phone_verified"},
	}
	return map[string][]indexSpec{
		document.UserDocument{}.CollectionName(): append(shared[:2:2],
			indexSpec{dao.FieldRegister, "is_register_verified"}),
		document.AdminDocument{}.CollectionName():    shared,
		document.MerchantDocument{}.CollectionName(): shared,
		document.ShopDocument{}.CollectionName():     shared,
	}
}

func ensureIndexes(db *MongoDatabase, logger *zap.Logger) error {
	ctx := context.Background()

	for collection, specs := range accountIndexSpecs() {
		models := make([]mongo.IndexModel, 0, len(specs))
		for _, spec := range specs {
			models = append(models, mongo.IndexModel{
				Keys: bson.D{{Key: spec.field, Value: 1}},
				Options: options.Index().
					SetName(fmt.Sprintf("uniq_%s_verified", spec.field)).
					SetUnique(true).
					SetPartialFilterExpression(bson.M{
						spec.verifiedFlag: true,
						"is_active":       true,
					}),
			})
		}
		if _, err := db.DB.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		logger.Info("unique indexes ensured",
			zap.String("collection", collection),
			zap.Int("count", len(models)))
	}

	// Lookup indexes for the transaction collections.
	refIndexes := map[string][]string{
		document.ItemDocument{}.CollectionName():    {"shop"},
		document.OrderDocument{}.CollectionName():   {"shop", "user"},
		document.PaymentDocument{}.CollectionName(): {"order"},
		document.ReviewDocument{}.CollectionName():  {"shop", "order"},
		document.SupportDocument{}.CollectionName(): {"shop"},
	}
	for collection, fields := range refIndexes {
		models := make([]mongo.IndexModel, 0, len(fields))
		for _, field := range fields {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
		}
		if _, err := db.DB.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
