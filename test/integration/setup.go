package integration

import (
	"context"
	"testing"
	"time"

	"lojinha/internal/config"
	"lojinha/internal/database"
	"lojinha/internal/model"
	"lojinha/internal/repository"
	"lojinha/internal/session"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TestDB represents a containerised MongoDB instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
}

// SetupTestDB starts a MongoDB container, connects and ensures indexes.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	cfg := config.MongoConfig{
		URI:      uri,
		Database: "lojinha_test",
		Timeout:  30,
	}

	logger := zerolog.Nop()
	client, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	db := client.Database(cfg.Database)
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			t.Logf("failed to disconnect: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: mongoContainer,
		Client:    client,
		DB:        db,
	}
}

// SetupSessionStore starts a Redis container and wraps it in a session store.
func SetupSessionStore(t *testing.T) *session.Store {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}

	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		t.Fatalf("failed to parse redis connection string: %v", err)
	}
	client := goredis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}

	t.Cleanup(func() {
		client.Close()
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return session.NewStore(client, time.Hour, zerolog.Nop())
}

// SeedProducts inserts test product data.
func SeedProducts(t *testing.T, repo repository.ProductRepository) []model.Product {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{Name: "Linen Shirt", Price: 89.90, Category: "shirts", Images: []string{"/images/shirt.jpg"}, Stock: 10},
		{Name: "Canvas Tote", Price: 25.00, Category: "accessories", Images: []string{"/images/tote.jpg"}, Stock: 40,
			Promo: &model.PromoRule{ThresholdQty: 3, BundlePrice: 60.00}},
		{Name: "Denim Jacket", Price: 199.90, Category: "jackets", Images: []string{"/images/jacket.jpg"}, Stock: 1},
		{Name: "Sold Cap", Price: 15.00, Category: "accessories", Images: []string{"/images/cap.jpg"}, Sold: true},
	}

	for i := range products {
		id, err := repo.Create(ctx, &products[i])
		if err != nil {
			t.Fatalf("failed to seed product %q: %v", products[i].Name, err)
		}
		products[i].ID = id
	}

	return products
}

// CleanupDB drops all collections between tests.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	collections := []string{
		database.CollectionProducts,
		database.CollectionOrders,
		database.CollectionCustomers,
		database.CollectionBanners,
	}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", name, err)
		}
	}
}
