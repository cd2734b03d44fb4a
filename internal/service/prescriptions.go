package service

import (
	"context"

	"pharmacy/m/domain"
)

// PrescriptionRepository is the storage PrescriptionService needs.
type PrescriptionRepository interface {
	Get(ctx context.Context, id int64) (*domain.Prescription, error)
	List(ctx context.Context) ([]domain.Prescription, error)
	ListByCustomer(ctx context.Context, ssn string) ([]domain.Prescription, error)
	Create(ctx context.Context, p *domain.Prescription) error
	Update(ctx context.Context, p *domain.Prescription) error
	Delete(ctx context.Context, id int64) error
}

// PrescriptionService serves prescription requests from the API.
type PrescriptionService struct {
	repo PrescriptionRepository
}

// NewPrescriptionService returns a PrescriptionService backed by repo.
func NewPrescriptionService(repo PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repo: repo}
}

// Get returns one prescription.
func (s *PrescriptionService) Get(ctx context.Context, id int64) (*domain.Prescription, error) {
	return s.repo.Get(ctx, id)
}

// List returns every prescription.
func (s *PrescriptionService) List(ctx context.Context) ([]domain.Prescription, error) {
	return s.repo.List(ctx)
}

// ListByCustomer returns the prescriptions written for ssn.
func (s *PrescriptionService) ListByCustomer(ctx context.Context, ssn string) ([]domain.Prescription, error) {
	return s.repo.ListByCustomer(ctx, ssn)
}

// Create stores a new prescription.
func (s *PrescriptionService) Create(ctx context.Context, p *domain.Prescription) error {
	return s.repo.Create(ctx, p)
}

// Update overwrites the stored prescription with the same key. A missing key is a no-op.
func (s *PrescriptionService) Update(ctx context.Context, p *domain.Prescription) error {
	return s.repo.Update(ctx, p)
}

// Delete removes the prescription. A missing key is a no-op.
func (s *PrescriptionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
