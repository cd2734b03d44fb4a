package service

import (
	"context"

	"pharmacy/m/domain"
)

// CustomerRepository is the storage CustomerService needs.
type CustomerRepository interface {
	Get(ctx context.Context, ssn string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, ssn string) error
}

// CustomerService serves customer requests from the API.
type CustomerService struct {
	repo CustomerRepository
}

// NewCustomerService returns a CustomerService backed by repo.
func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// GetBySSN returns the customer with the given SSN.
func (s *CustomerService) GetBySSN(ctx context.Context, ssn string) (*domain.Customer, error) {
	return s.repo.Get(ctx, ssn)
}

// List returns every customer.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Create stores a new customer.
func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) error {
	return s.repo.Create(ctx, c)
}

// Update overwrites the stored customer with the same key. A missing key is a no-op.
func (s *CustomerService) Update(ctx context.Context, c *domain.Customer) error {
	return s.repo.Update(ctx, c)
}

// Delete removes the customer. A missing key is a no-op.
func (s *CustomerService) Delete(ctx context.Context, ssn string) error {
	return s.repo.Delete(ctx, ssn)
}
