package service

import (
	"context"

	"pharmacy/m/domain"
)

// MedicineRepository is the storage MedicineService needs.
type MedicineRepository interface {
	Get(ctx context.Context, drugName, batchNumber string) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	Create(ctx context.Context, m *domain.Medicine) error
	Update(ctx context.Context, m *domain.Medicine) error
	Delete(ctx context.Context, drugName, batchNumber string) error
}

// MedicineService serves medicine requests from the API.
type MedicineService struct {
	repo MedicineRepository
}

// NewMedicineService returns a MedicineService backed by repo.
func NewMedicineService(repo MedicineRepository) *MedicineService {
	return &MedicineService{repo: repo}
}

// Get returns one medicine.
func (s *MedicineService) Get(ctx context.Context, drugName, batchNumber string) (*domain.Medicine, error) {
	return s.repo.Get(ctx, drugName, batchNumber)
}

// List returns every medicine.
func (s *MedicineService) List(ctx context.Context) ([]domain.Medicine, error) {
	return s.repo.List(ctx)
}

// Create stores a new medicine.
func (s *MedicineService) Create(ctx context.Context, m *domain.Medicine) error {
	return s.repo.Create(ctx, m)
}

// Update overwrites the stored medicine with the same key. A missing key is a no-op.
func (s *MedicineService) Update(ctx context.Context, m *domain.Medicine) error {
	return s.repo.Update(ctx, m)
}

// Delete removes the medicine. A missing key is a no-op.
func (s *MedicineService) Delete(ctx context.Context, drugName, batchNumber string) error {
	return s.repo.Delete(ctx, drugName, batchNumber)
}
