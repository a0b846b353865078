package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshit1314/ecommerce-api/internal/product"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingUser     = errors.New("user_id is required")
)

// Service implements order creation, listing and summarization. Creation is
// the core flow: resolve every requested product from the catalog, compute
// the total server-side, then persist one denormalized record.
type Service struct {
	repo    Repository
	catalog product.ServiceInterface
}

func NewService(repo Repository, catalog product.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Create resolves each requested item against the catalog, computes the
// total and persists the order as a single insert. The first unresolved
// product name fails the whole order before anything is written. Totals are
// rounded to 2 decimal places, half away from zero.
func (s *Service) Create(ctx context.Context, userID string, items []ItemInput) (Order, error) {
	if userID == "" {
		return Order{}, ErrMissingUser
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	lineItems := make([]LineItem, 0, len(items))
	total := decimal.Zero

	for _, in := range items {
		if in.Quantity <= 0 {
			return Order{}, ErrInvalidQuantity
		}

		p, err := s.catalog.FindByName(ctx, in.ProductName)
		if err != nil {
			return Order{}, fmt.Errorf("product %q: %w", in.ProductName, err)
		}

		total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(in.Quantity))))
		lineItems = append(lineItems, LineItem{
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    in.Quantity,
			Description: p.Description,
			Category:    p.Category,
		})
	}

	ord := Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Items:       lineItems,
		TotalAmount: total.Round(2).InexactFloat64(),
		Timestamp:   time.Now().UTC(),
	}

	return s.repo.Create(ctx, ord)
}

func (s *Service) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) SummaryByUser(ctx context.Context, userID string) (Summary, error) {
	return s.repo.SummaryByUser(ctx, userID)
}
