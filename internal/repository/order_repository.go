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

// orderRepository implements OrderRepository against the orders collection.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a document-store-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(database.CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order and returns its generated ID.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (string, error) {
	order.ID = bson.NewObjectID().Hex()
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		r.logger.Error().Err(err).Msg("failed to insert order")
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	return order.ID, nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// List retrieves all orders, most recent first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.find(ctx, bson.M{})
}

// ListByEmail retrieves a customer's orders by contact email.
func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"customerInfo.email": email})
}

// ListByPhone retrieves a customer's orders by contact phone.
func (r *orderRepository) ListByPhone(ctx context.Context, phone string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"customerInfo.phone": phone})
}

// UpdateStatus sets the order status and refreshes updatedAt.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if result.MatchedCount == 0 {
		return model.ErrOrderNotFound
	}

	r.logger.Info().
		Str("order_id", id).
		Str("status", status.String()).
		Msg("order status updated")

	return nil
}

// find runs a filtered query sorted by creation time, newest first.
func (r *orderRepository) find(ctx context.Context, query bson.M) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
