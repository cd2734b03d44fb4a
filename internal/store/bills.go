package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const billColumns = `order_id, customer_ssn, total_amount, customer_payment`

// Bills is the repository for the bills table.
type Bills struct {
	db *sqlx.DB
}

// NewBills returns a Bills backed by db.
func NewBills(db *sqlx.DB) *Bills {
	return &Bills{db: db}
}

// Get returns the bill with the given key, or ErrNotFound.
func (s *Bills) Get(ctx context.Context, orderID int64) (*domain.Bill, error) {
	var b domain.Bill
	err := s.db.GetContext(ctx, &b, s.db.Rebind(`SELECT `+billColumns+` FROM bills WHERE order_id = ?`), orderID)
	if err != nil {
		return nil, notFound(err, "bill")
	}
	return &b, nil
}

// GetForCustomer matches only when the bill for orderID was issued to customerSSN.
func (s *Bills) GetForCustomer(ctx context.Context, orderID int64, customerSSN string) (*domain.Bill, error) {
	var b domain.Bill
	err := s.db.GetContext(ctx, &b, s.db.Rebind(`SELECT `+billColumns+` FROM bills
                WHERE order_id = ? AND customer_ssn = ?`), orderID, customerSSN)
	if err != nil {
		return nil, notFound(err, "bill")
	}
	return &b, nil
}

// List returns every bill.
func (s *Bills) List(ctx context.Context) ([]domain.Bill, error) {
	bills := []domain.Bill{}
	if err := s.db.SelectContext(ctx, &bills, `SELECT `+billColumns+` FROM bills`); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}

// Create stores a new bill.
func (s *Bills) Create(ctx context.Context, b *domain.Bill) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO bills (`+billColumns+`)
                VALUES (:order_id, :customer_ssn, :total_amount, :customer_payment)`, b)
	if err != nil {
		return fmt.Errorf("create bill: %w", err)
	}
	return nil
}

// Update overwrites the stored bill with the same key. A missing key is a no-op.
func (s *Bills) Update(ctx context.Context, b *domain.Bill) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE bills SET customer_ssn = :customer_ssn, total_amount = :total_amount,
                customer_payment = :customer_payment WHERE order_id = :order_id`, b)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete removes the bill. A missing key is a no-op.
func (s *Bills) Delete(ctx context.Context, orderID int64) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM bills WHERE order_id = ?`), orderID); err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// DeleteForCustomer removes the bill only if it belongs to customerSSN.
func (s *Bills) DeleteForCustomer(ctx context.Context, orderID int64, customerSSN string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM bills WHERE order_id = ? AND customer_ssn = ?`), orderID, customerSSN)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}
