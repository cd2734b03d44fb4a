package domain

import "time"

// Prescription links a customer (by SSN) to a doctor. The link is not enforced by the store.
type Prescription struct {
	PrescriptionID   int64      `db:"prescription_id" json:"prescription_id"`
	SSN              string     `db:"ssn" json:"ssn"`
	DoctorID         int64      `db:"doctor_id" json:"doctor_id"`
	PrescriptionDate *time.Time `db:"prescription_date" json:"prescription_date,omitempty"`
}
