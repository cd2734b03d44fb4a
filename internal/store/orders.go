package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const orderColumns = `order_id, prescription_id, employee_id, order_date`

// Orders is the repository for the order_details table.
type Orders struct {
	db *sqlx.DB
}

// NewOrders returns an Orders backed by db.
func NewOrders(db *sqlx.DB) *Orders {
	return &Orders{db: db}
}

// Get returns the order with the given key, or ErrNotFound.
func (s *Orders) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := s.db.GetContext(ctx, &o, s.db.Rebind(`SELECT `+orderColumns+` FROM order_details WHERE order_id = ?`), id)
	if err != nil {
		return nil, notFound(err, "order")
	}
	return &o, nil
}

// List returns every order.
func (s *Orders) List(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := s.db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM order_details`); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Create inserts o. A zero OrderID lets the identity column pick one, which is written back to o.
func (s *Orders) Create(ctx context.Context, o *domain.Order) error {
	var err error
	explicit := o.OrderID != 0
	if !explicit {
		err = s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO order_details (prescription_id, employee_id, order_date)
                VALUES (?, ?, ?) RETURNING order_id`), o.PrescriptionID, o.EmployeeID, o.OrderDate).Scan(&o.OrderID)
	} else {
		_, err = s.db.NamedExecContext(ctx, `INSERT INTO order_details (`+orderColumns+`)
                VALUES (:order_id, :prescription_id, :employee_id, :order_date)`, o)
	}
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	if explicit {
		return syncIdentity(ctx, s.db, "order_details", "order_id")
	}
	return nil
}

// Update overwrites the stored order with the same key. A missing key is a no-op.
func (s *Orders) Update(ctx context.Context, o *domain.Order) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE order_details SET prescription_id = :prescription_id,
                employee_id = :employee_id, order_date = :order_date WHERE order_id = :order_id`, o)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete removes the order. A missing key is a no-op.
func (s *Orders) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM order_details WHERE order_id = ?`), id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
