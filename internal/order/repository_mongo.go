package order

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoRepository) Create(ctx context.Context, ord Order) (Order, error) {
	res, err := m.collection.InsertOne(ctx, ord)
	if err != nil {
		return Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	if res.InsertedID == nil {
		return Order{}, ErrNotAcknowledged
	}

	return ord, nil
}

func (m *mongoRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]Order, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().
		SetSkip(offset).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}

func (m *mongoRepository) SummaryByUser(ctx context.Context, userID string) (Summary, error) {
	// sum and count are delegated entirely to the engine
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "total_value", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
			{Key: "total_orders", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var results []Summary
	if err := cursor.All(ctx, &results); err != nil {
		return Summary{}, fmt.Errorf("failed to decode summary: %w", err)
	}

	if len(results) == 0 {
		return Summary{}, ErrNoOrders
	}
	return results[0], nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
