package domain

import "time"

// Medicine is one stocked batch of a drug; drug name and batch number form the key.
type Medicine struct {
	DrugName     string     `db:"drug_name" json:"drug_name" validate:"required"`
	BatchNumber  string     `db:"batch_number" json:"batch_number" validate:"required"`
	MedicineType string     `db:"medicine_type" json:"medicine_type"`
	Manufacturer string     `db:"manufacturer" json:"manufacturer"`
	Quantity     int64      `db:"quantity" json:"quantity"`
	ExpiryDate   *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	Price        *float64   `db:"price" json:"price,omitempty"`
}
