package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lojinha/internal/database"
	"lojinha/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// customerRepository implements CustomerRepository against the customers
// collection.
type customerRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewCustomerRepository creates a document-store-backed customer repository.
func NewCustomerRepository(db *mongo.Database, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		collection: db.Collection(database.CollectionCustomers),
		logger:     logger.With().Str("repository", "customer").Logger(),
	}
}

// List retrieves all customers, most recently created first.
func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode customers")
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}

// FindByContact retrieves the customer matching the (email, phone) pair.
// An empty email matches customers stored without one.
func (r *customerRepository) FindByContact(ctx context.Context, match CustomerMatch) (*model.Customer, error) {
	query := bson.M{
		"phone": match.Phone,
	}
	if match.Email == "" {
		query["email"] = bson.M{"$in": bson.A{"", nil}}
	} else {
		query["email"] = match.Email
	}

	var customer model.Customer
	err := r.collection.FindOne(ctx, query).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("phone", match.Phone).Msg("failed to look up customer")
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return &customer, nil
}

// Create inserts a new customer and returns its generated ID.
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (string, error) {
	customer.ID = bson.NewObjectID().Hex()
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		r.logger.Error().Err(err).Str("phone", customer.Phone).Msg("failed to insert customer")
		return "", fmt.Errorf("failed to insert customer: %w", err)
	}

	return customer.ID, nil
}

// Update replaces the mutable fields of an existing customer.
func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	update := bson.M{"$set": bson.M{
		"name":          customer.Name,
		"email":         customer.Email,
		"address":       customer.Address,
		"lastOrderId":   customer.LastOrderID,
		"lastOrderDate": customer.LastOrderDate,
		"totalOrders":   customer.TotalOrders,
		"totalSpent":    customer.TotalSpent,
		"updatedAt":     time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": customer.ID}, update)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to update customer")
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer %s not found", customer.ID)
	}
	return nil
}
