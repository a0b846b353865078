package product

import "context"

// ServiceInterface lets other packages (the order service) depend on catalog
// lookups without importing the concrete service.
type ServiceInterface interface {
	CreateProducts(ctx context.Context, products []Product) ([]Product, error)
	List(ctx context.Context, limit, offset int64) ([]Product, error)
	FindByName(ctx context.Context, name string) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProducts(ctx context.Context, products []Product) ([]Product, error) {
	return s.repo.CreateMany(ctx, products)
}

func (s *Service) List(ctx context.Context, limit, offset int64) ([]Product, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) FindByName(ctx context.Context, name string) (Product, error) {
	return s.repo.FindByName(ctx, name)
}

var _ ServiceInterface = (*Service)(nil)
