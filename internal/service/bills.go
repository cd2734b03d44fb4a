package service

import (
	"context"

	"pharmacy/m/domain"
)

// BillRepository is the storage BillService needs.
type BillRepository interface {
	Get(ctx context.Context, orderID int64) (*domain.Bill, error)
	GetForCustomer(ctx context.Context, orderID int64, customerSSN string) (*domain.Bill, error)
	List(ctx context.Context) ([]domain.Bill, error)
	Create(ctx context.Context, b *domain.Bill) error
	Update(ctx context.Context, b *domain.Bill) error
	Delete(ctx context.Context, orderID int64) error
	DeleteForCustomer(ctx context.Context, orderID int64, customerSSN string) error
}

// BillService serves bill requests from the API.
type BillService struct {
	repo BillRepository
}

// NewBillService returns a BillService backed by repo.
func NewBillService(repo BillRepository) *BillService {
	return &BillService{repo: repo}
}

// Get returns one bill.
func (s *BillService) Get(ctx context.Context, orderID int64) (*domain.Bill, error) {
	return s.repo.Get(ctx, orderID)
}

// GetForCustomer is the two-part lookup: both the order and the billed customer must match.
func (s *BillService) GetForCustomer(ctx context.Context, orderID int64, customerSSN string) (*domain.Bill, error) {
	return s.repo.GetForCustomer(ctx, orderID, customerSSN)
}

// List returns every bill.
func (s *BillService) List(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.List(ctx)
}

// Create stores a new bill.
func (s *BillService) Create(ctx context.Context, b *domain.Bill) error {
	return s.repo.Create(ctx, b)
}

// Update overwrites the stored bill with the same key. A missing key is a no-op.
func (s *BillService) Update(ctx context.Context, b *domain.Bill) error {
	return s.repo.Update(ctx, b)
}

// Delete removes the bill. A missing key is a no-op.
func (s *BillService) Delete(ctx context.Context, orderID int64) error {
	return s.repo.Delete(ctx, orderID)
}

// DeleteForCustomer removes the bill only if it belongs to customerSSN.
func (s *BillService) DeleteForCustomer(ctx context.Context, orderID int64, customerSSN string) error {
	return s.repo.DeleteForCustomer(ctx, orderID, customerSSN)
}
