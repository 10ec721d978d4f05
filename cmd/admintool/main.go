// Command admintool registers a platform operator account from the shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/config"
	mongodao "github.com/mealmart/mealmart-go/internal/domain/dao/mongo"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	repoimpl "github.com/mealmart/mealmart-go/internal/domain/repository/impl"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	svcimpl "github.com/mealmart/mealmart-go/internal/domain/service/impl"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/security"
)

func main() {
	var (
		name     = flag.String("name", "", "operator display name")
		email    = flag.String("email", "", "operator email address")
		phone    = flag.String("phone", "", "operator phone number, ten digits")
		password = flag.String("password", "", "initial password")
	)
	flag.Parse()

	if *name == "" || *email == "" || *phone == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.MongoURI()))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	svc := buildAdminService(cfg, client.Database(cfg.Database.Name))

	runCtx, cancelRun := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelRun()

	admin := &entity.Admin{Account: entity.Account{
		Name:  *name,
		Email: *email,
		Phone: *phone,
	}}
	created, err := svc.Register(runCtx, admin, *password)
	if err != nil {
		log.Fatalf("failed to register admin: %v", err)
	}

	fmt.Printf("admin registered: id=%s email=%s\n", created.ID, created.Email)
}

func buildAdminService(cfg *config.Config, db *mongo.Database) service.AdminService {
	repo := repoimpl.NewAdminRepository(mongodao.NewAdminDAO(db))
	return svcimpl.NewAdminService(
		repo,
		security.NewPasswordHasher(),
		security.NewPasscodeIssuer(&cfg.Passcode),
		security.NewJWTProvider(&cfg.JWT),
		observability.NewMetrics(),
		zap.NewNop(),
	)
}
