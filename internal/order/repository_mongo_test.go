package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/harshit1314/ecommerce-api/internal/storage"
)

func setupTestDB(t *testing.T) (Repository, func()) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := storage.ConnectMongoDB(ctx, uri, "testdb")
	require.NoError(t, err)

	repo := NewMongoRepository(db)

	err = repo.(*mongoRepository).CreateIndexes(ctx)
	require.NoError(t, err)

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func testOrder(userID string, total float64) Order {
	return Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Items: []LineItem{
			{Name: "A", Price: total, Quantity: 1, Category: "c"},
		},
		TotalAmount: total,
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestCreate_AndListByUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	first := testOrder("u1", 27.50)
	created, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first.ID, created.ID)

	_, err = repo.Create(ctx, testOrder("u1", 10.00))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("u2", 5.00))
	require.NoError(t, err)

	orders, err := repo.ListByUser(ctx, "u1", 10, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, 27.50, orders[0].TotalAmount)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, first.Timestamp.Equal(orders[0].Timestamp), "timestamp should survive the round trip")

	// pagination
	page, err := repo.ListByUser(ctx, "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 10.00, page[0].TotalAmount)
}

func TestListByUser_EmptyIsErrNoOrders(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.ListByUser(ctx, "ghost", 10, 0)
	assert.ErrorIs(t, err, ErrNoOrders)

	// an offset past the result set behaves the same way
	_, err = repo.Create(ctx, testOrder("u1", 1.00))
	require.NoError(t, err)
	_, err = repo.ListByUser(ctx, "u1", 10, 5)
	assert.ErrorIs(t, err, ErrNoOrders)
}

func TestSummaryByUser_AggregatesInEngine(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrder("u1", 27.50))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("u1", 10.00))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("u2", 99.99))
	require.NoError(t, err)

	summary, err := repo.SummaryByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", summary.UserID)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 37.50, summary.TotalValue)

	_, err = repo.SummaryByUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoOrders)
}
