package service

import (
	"context"

	"pharmacy/m/domain"
)

// OrderRepository is the storage OrderService needs.
type OrderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id int64) error
}

// OrderService serves order requests from the API.
type OrderService struct {
	repo OrderRepository
}

// NewOrderService returns an OrderService backed by repo.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Get returns one order.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Create stores a new order.
func (s *OrderService) Create(ctx context.Context, o *domain.Order) error {
	return s.repo.Create(ctx, o)
}

// Update overwrites the stored order with the same key. A missing key is a no-op.
func (s *OrderService) Update(ctx context.Context, o *domain.Order) error {
	return s.repo.Update(ctx, o)
}

// Delete removes the order. A missing key is a no-op.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
