package product

import (
	"context"
	"errors"
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
		collection: db.Collection("products"),
	}
}

func (m *mongoRepository) CreateMany(ctx context.Context, products []Product) ([]Product, error) {
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	res, err := m.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}
	if len(res.InsertedIDs) == 0 {
		return nil, ErrNothingInserted
	}

	return products, nil
}

func (m *mongoRepository) List(ctx context.Context, limit, offset int64) ([]Product, error) {
	// exclude _id so responses carry only the declared fields
	opts := options.Find().
		SetSkip(offset).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (m *mongoRepository) FindByName(ctx context.Context, name string) (Product, error) {
	var p Product

	filter := bson.M{"name": name}
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	err := m.collection.FindOne(ctx, filter, opts).Decode(&p)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return p, nil
}

func (m *mongoRepository) CreateIndexes(ctx context.Context) error {
	// name is the order lookup key; not unique, duplicates resolve to the
	// first document in natural order
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
