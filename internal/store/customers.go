package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const customerColumns = `ssn, first_name, last_name, phone, gender, address, date_of_birth`

// Customers is the repository for the customers table.
type Customers struct {
	db *sqlx.DB
}

// NewCustomers returns a Customers backed by db.
func NewCustomers(db *sqlx.DB) *Customers {
	return &Customers{db: db}
}

// Get returns the customer with the given key, or ErrNotFound.
func (s *Customers) Get(ctx context.Context, ssn string) (*domain.Customer, error) {
	var c domain.Customer
	err := s.db.GetContext(ctx, &c, s.db.Rebind(`SELECT `+customerColumns+` FROM customers WHERE ssn = ?`), ssn)
	if err != nil {
		return nil, notFound(err, "customer")
	}
	return &c, nil
}

// List returns every customer.
func (s *Customers) List(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := s.db.SelectContext(ctx, &customers, `SELECT `+customerColumns+` FROM customers`); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Create stores a new customer.
func (s *Customers) Create(ctx context.Context, c *domain.Customer) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO customers (`+customerColumns+`)
                VALUES (:ssn, :first_name, :last_name, :phone, :gender, :address, :date_of_birth)`, c)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// Update replaces every column of the row keyed by c.SSN. A missing row is left missing.
func (s *Customers) Update(ctx context.Context, c *domain.Customer) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE customers SET first_name = :first_name, last_name = :last_name,
                phone = :phone, gender = :gender, address = :address, date_of_birth = :date_of_birth
                WHERE ssn = :ssn`, c)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes the customer. A missing key is a no-op.
func (s *Customers) Delete(ctx context.Context, ssn string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM customers WHERE ssn = ?`), ssn); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
