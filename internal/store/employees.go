package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

// Employees is the repository for the employees table.
type Employees struct {
	db *sqlx.DB
}

// NewEmployees returns an Employees backed by db.
func NewEmployees(db *sqlx.DB) *Employees {
	return &Employees{db: db}
}

// Create stores e with an already hashed password and fills in e.ID.
func (s *Employees) Create(ctx context.Context, e *domain.Employee) error {
	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO employees (username, email, password, role)
                VALUES (?, ?, ?, ?) RETURNING id`), e.Username, e.Email, e.Password, e.Role).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s: %w", e.Email, ErrDuplicate)
		}
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// GetByEmail returns the account registered under email, password hash included.
func (s *Employees) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var e domain.Employee
	err := s.db.GetContext(ctx, &e, s.db.Rebind(`SELECT id, username, email, password, role, created_at
                FROM employees WHERE email = ?`), email)
	if err != nil {
		return nil, notFound(err, "employee")
	}
	return &e, nil
}

// UpdatePassword replaces the stored hash. It returns ErrNotFound for an unknown id.
func (s *Employees) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE employees SET password = ? WHERE id = ?`), hash, id)
	if err != nil {
		return fmt.Errorf("update employee password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("employee %d: %w", id, ErrNotFound)
	}
	return nil
}
