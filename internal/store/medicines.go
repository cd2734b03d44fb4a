package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const medicineColumns = `drug_name, batch_number, medicine_type, manufacturer, quantity, expiry_date, price`

// Medicines is the repository for the medicines table.
type Medicines struct {
	db *sqlx.DB
}

// NewMedicines returns a Medicines backed by db.
func NewMedicines(db *sqlx.DB) *Medicines {
	return &Medicines{db: db}
}

// Get returns the medicine with the given key, or ErrNotFound.
func (s *Medicines) Get(ctx context.Context, drugName, batchNumber string) (*domain.Medicine, error) {
	var m domain.Medicine
	err := s.db.GetContext(ctx, &m, s.db.Rebind(`SELECT `+medicineColumns+` FROM medicines
                WHERE drug_name = ? AND batch_number = ?`), drugName, batchNumber)
	if err != nil {
		return nil, notFound(err, "medicine")
	}
	return &m, nil
}

// List returns every medicine.
func (s *Medicines) List(ctx context.Context) ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	if err := s.db.SelectContext(ctx, &medicines, `SELECT `+medicineColumns+` FROM medicines`); err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	return medicines, nil
}

// Create stores a new medicine.
func (s *Medicines) Create(ctx context.Context, m *domain.Medicine) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO medicines (`+medicineColumns+`)
                VALUES (:drug_name, :batch_number, :medicine_type, :manufacturer, :quantity, :expiry_date, :price)`, m)
	if err != nil {
		return fmt.Errorf("create medicine: %w", err)
	}
	return nil
}

// Update overwrites the stored medicine with the same key. A missing key is a no-op.
func (s *Medicines) Update(ctx context.Context, m *domain.Medicine) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE medicines SET medicine_type = :medicine_type, manufacturer = :manufacturer,
                quantity = :quantity, expiry_date = :expiry_date, price = :price
                WHERE drug_name = :drug_name AND batch_number = :batch_number`, m)
	if err != nil {
		return fmt.Errorf("update medicine: %w", err)
	}
	return nil
}

// Delete removes the medicine. A missing key is a no-op.
func (s *Medicines) Delete(ctx context.Context, drugName, batchNumber string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM medicines WHERE drug_name = ? AND batch_number = ?`), drugName, batchNumber)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return nil
}
