package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
)

const prescriptionColumns = `prescription_id, ssn, doctor_id, prescription_date`

// Prescriptions is the repository for the prescriptions table.
type Prescriptions struct {
	db *sqlx.DB
}

// NewPrescriptions returns a Prescriptions backed by db.
func NewPrescriptions(db *sqlx.DB) *Prescriptions {
	return &Prescriptions{db: db}
}

// Get returns the prescription with the given key, or ErrNotFound.
func (s *Prescriptions) Get(ctx context.Context, id int64) (*domain.Prescription, error) {
	var p domain.Prescription
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT `+prescriptionColumns+` FROM prescriptions WHERE prescription_id = ?`), id)
	if err != nil {
		return nil, notFound(err, "prescription")
	}
	return &p, nil
}

// List returns every prescription.
func (s *Prescriptions) List(ctx context.Context) ([]domain.Prescription, error) {
	prescriptions := []domain.Prescription{}
	if err := s.db.SelectContext(ctx, &prescriptions, `SELECT `+prescriptionColumns+` FROM prescriptions`); err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescriptions, nil
}

// ListByCustomer returns the prescriptions written for ssn.
func (s *Prescriptions) ListByCustomer(ctx context.Context, ssn string) ([]domain.Prescription, error) {
	prescriptions := []domain.Prescription{}
	err := s.db.SelectContext(ctx, &prescriptions, s.db.Rebind(`SELECT `+prescriptionColumns+` FROM prescriptions WHERE ssn = ?`), ssn)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions for customer: %w", err)
	}
	return prescriptions, nil
}

// Create inserts p. A zero PrescriptionID lets the identity column pick one, which is written back to p.
func (s *Prescriptions) Create(ctx context.Context, p *domain.Prescription) error {
	var err error
	explicit := p.PrescriptionID != 0
	if !explicit {
		err = s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO prescriptions (ssn, doctor_id, prescription_date)
                VALUES (?, ?, ?) RETURNING prescription_id`), p.SSN, p.DoctorID, p.PrescriptionDate).Scan(&p.PrescriptionID)
	} else {
		_, err = s.db.NamedExecContext(ctx, `INSERT INTO prescriptions (`+prescriptionColumns+`)
                VALUES (:prescription_id, :ssn, :doctor_id, :prescription_date)`, p)
	}
	if err != nil {
		return fmt.Errorf("create prescription: %w", err)
	}
	if explicit {
		return syncIdentity(ctx, s.db, "prescriptions", "prescription_id")
	}
	return nil
}

// Update overwrites the stored prescription with the same key. A missing key is a no-op.
func (s *Prescriptions) Update(ctx context.Context, p *domain.Prescription) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE prescriptions SET ssn = :ssn, doctor_id = :doctor_id,
                prescription_date = :prescription_date WHERE prescription_id = :prescription_id`, p)
	if err != nil {
		return fmt.Errorf("update prescription: %w", err)
	}
	return nil
}

// Delete removes the prescription. A missing key is a no-op.
func (s *Prescriptions) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM prescriptions WHERE prescription_id = ?`), id); err != nil {
		return fmt.Errorf("delete prescription: %w", err)
	}
	return nil
}
