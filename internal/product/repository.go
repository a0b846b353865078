package product

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrNothingInserted = errors.New("no products were inserted")
)

type Repository interface {
	// CreateMany inserts all products as one batch.
	CreateMany(ctx context.Context, products []Product) ([]Product, error)
	// List returns up to limit products after skipping offset, in
	// storage-natural order.
	List(ctx context.Context, limit, offset int64) ([]Product, error)
	// FindByName returns the first matching product when names collide.
	FindByName(ctx context.Context, name string) (Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
// It preserves insertion order, so FindByName resolves duplicate names to the
// first-inserted record, mirroring the Mongo natural-order behavior.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) CreateMany(_ context.Context, products []Product) ([]Product, error) {
	if len(products) == 0 {
		return nil, ErrNothingInserted
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = append(r.storage, products...)
	return products, nil
}

func (r *InMemoryRepository) List(_ context.Context, limit, offset int64) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= int64(len(r.storage)) {
		return []Product{}, nil
	}
	end := offset + limit
	if end > int64(len(r.storage)) {
		end = int64(len(r.storage))
	}

	out := make([]Product, end-offset)
	copy(out, r.storage[offset:end])
	return out, nil
}

func (r *InMemoryRepository) FindByName(_ context.Context, name string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
