package order

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNoOrders is returned when a user has no matching orders. Empty
	// result sets are an error here, not an empty list; the handlers turn
	// this into a 404.
	ErrNoOrders = errors.New("no orders found")
	// ErrNotAcknowledged is returned when the storage engine does not
	// acknowledge the order write.
	ErrNotAcknowledged = errors.New("order write was not acknowledged")
)

type Repository interface {
	// Create persists the order as a single insert.
	Create(ctx context.Context, ord Order) (Order, error)
	// ListByUser returns the user's orders with skip/limit pagination, or
	// ErrNoOrders when the page is empty.
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]Order, error)
	// SummaryByUser aggregates order count and total value for a user, or
	// ErrNoOrders when the user has none.
	SummaryByUser(ctx context.Context, userID string) (Summary, error)
}

// InMemoryRepository keeps orders in insertion order; used by handler and
// service tests in place of the Mongo repository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make([]Order, 0)}
}

func (r *InMemoryRepository) Create(_ context.Context, ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID string, limit, offset int64) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Order, 0)
	for _, ord := range r.storage {
		if ord.UserID == userID {
			matched = append(matched, ord)
		}
	}

	if offset >= int64(len(matched)) {
		return nil, ErrNoOrders
	}
	end := offset + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}

	page := matched[offset:end]
	if len(page) == 0 {
		return nil, ErrNoOrders
	}

	out := make([]Order, len(page))
	copy(out, page)
	return out, nil
}

func (r *InMemoryRepository) SummaryByUser(_ context.Context, userID string) (Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := Summary{UserID: userID}
	for _, ord := range r.storage {
		if ord.UserID == userID {
			summary.TotalOrders++
			summary.TotalValue += ord.TotalAmount
		}
	}

	if summary.TotalOrders == 0 {
		return Summary{}, ErrNoOrders
	}
	return summary, nil
}

// Len reports the number of stored orders; tests use it to verify that a
// failed order creation wrote nothing.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage)
}
