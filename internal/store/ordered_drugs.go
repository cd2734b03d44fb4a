package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const orderedDrugColumns = `order_id, drug_name, batch_number, quantity, price`

// OrderedDrugs is the repository for the ordered_drugs table.
type OrderedDrugs struct {
	db *sqlx.DB
}

// NewOrderedDrugs returns an OrderedDrugs backed by db.
func NewOrderedDrugs(db *sqlx.DB) *OrderedDrugs {
	return &OrderedDrugs{db: db}
}

// Get returns the ordered drug with the given key, or ErrNotFound.
func (s *OrderedDrugs) Get(ctx context.Context, orderID int64, drugName, batchNumber string) (*domain.OrderedDrug, error) {
	var d domain.OrderedDrug
	err := s.db.GetContext(ctx, &d, s.db.Rebind(`SELECT `+orderedDrugColumns+` FROM ordered_drugs
                WHERE order_id = ? AND drug_name = ? AND batch_number = ?`), orderID, drugName, batchNumber)
	if err != nil {
		return nil, notFound(err, "ordered drug")
	}
	return &d, nil
}

// List returns every ordered drug.
func (s *OrderedDrugs) List(ctx context.Context) ([]domain.OrderedDrug, error) {
	drugs := []domain.OrderedDrug{}
	if err := s.db.SelectContext(ctx, &drugs, `SELECT `+orderedDrugColumns+` FROM ordered_drugs`); err != nil {
		return nil, fmt.Errorf("list ordered drugs: %w", err)
	}
	return drugs, nil
}

// ListByOrder returns the drugs on one order.
func (s *OrderedDrugs) ListByOrder(ctx context.Context, orderID int64) ([]domain.OrderedDrug, error) {
	drugs := []domain.OrderedDrug{}
	err := s.db.SelectContext(ctx, &drugs, s.db.Rebind(`SELECT `+orderedDrugColumns+` FROM ordered_drugs WHERE order_id = ?`), orderID)
	if err != nil {
		return nil, fmt.Errorf("list ordered drugs for order %d: %w", orderID, err)
	}
	return drugs, nil
}

// Create stores a new ordered drug.
func (s *OrderedDrugs) Create(ctx context.Context, d *domain.OrderedDrug) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO ordered_drugs (`+orderedDrugColumns+`)
                VALUES (:order_id, :drug_name, :batch_number, :quantity, :price)`, d)
	if err != nil {
		return fmt.Errorf("create ordered drug: %w", err)
	}
	return nil
}

// Update overwrites the stored ordered drug with the same key. A missing key is a no-op.
func (s *OrderedDrugs) Update(ctx context.Context, d *domain.OrderedDrug) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE ordered_drugs SET quantity = :quantity, price = :price
                WHERE order_id = :order_id AND drug_name = :drug_name AND batch_number = :batch_number`, d)
	if err != nil {
		return fmt.Errorf("update ordered drug: %w", err)
	}
	return nil
}

// Delete removes the ordered drug. A missing key is a no-op.
func (s *OrderedDrugs) Delete(ctx context.Context, orderID int64, drugName, batchNumber string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM ordered_drugs
                WHERE order_id = ? AND drug_name = ? AND batch_number = ?`), orderID, drugName, batchNumber)
	if err != nil {
		return fmt.Errorf("delete ordered drug: %w", err)
	}
	return nil
}
