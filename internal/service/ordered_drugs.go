package service

import (
	"context"

	"pharmacy/m/domain"
)

// OrderedDrugRepository is the storage OrderedDrugService needs.
type OrderedDrugRepository interface {
	Get(ctx context.Context, orderID int64, drugName, batchNumber string) (*domain.OrderedDrug, error)
	List(ctx context.Context) ([]domain.OrderedDrug, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderedDrug, error)
	Create(ctx context.Context, d *domain.OrderedDrug) error
	Update(ctx context.Context, d *domain.OrderedDrug) error
	Delete(ctx context.Context, orderID int64, drugName, batchNumber string) error
}

// OrderedDrugService serves ordered drug requests from the API.
type OrderedDrugService struct {
	repo OrderedDrugRepository
}

// NewOrderedDrugService returns an OrderedDrugService backed by repo.
func NewOrderedDrugService(repo OrderedDrugRepository) *OrderedDrugService {
	return &OrderedDrugService{repo: repo}
}

// Get returns one ordered drug.
func (s *OrderedDrugService) Get(ctx context.Context, orderID int64, drugName, batchNumber string) (*domain.OrderedDrug, error) {
	return s.repo.Get(ctx, orderID, drugName, batchNumber)
}

// List returns every ordered drug.
func (s *OrderedDrugService) List(ctx context.Context) ([]domain.OrderedDrug, error) {
	return s.repo.List(ctx)
}

// ListByOrder returns the drugs on one order.
func (s *OrderedDrugService) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderedDrug, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

// Create stores a new ordered drug.
func (s *OrderedDrugService) Create(ctx context.Context, d *domain.OrderedDrug) error {
	return s.repo.Create(ctx, d)
}

// Update overwrites the stored ordered drug with the same key. A missing key is a no-op.
func (s *OrderedDrugService) Update(ctx context.Context, d *domain.OrderedDrug) error {
	return s.repo.Update(ctx, d)
}

// Delete removes the ordered drug. A missing key is a no-op.
func (s *OrderedDrugService) Delete(ctx context.Context, orderID int64, drugName, batchNumber string) error {
	return s.repo.Delete(ctx, orderID, drugName, batchNumber)
}
