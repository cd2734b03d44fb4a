package domain

import "time"

// Order is one sale placed against a prescription by an employee.
type Order struct {
	OrderID        int64     `db:"order_id" json:"order_id"`
	PrescriptionID int64     `db:"prescription_id" json:"prescription_id"`
	EmployeeID     int64     `db:"employee_id" json:"employee_id"`
	OrderDate      time.Time `db:"order_date" json:"order_date"`
}

// OrderedDrug is one medicine batch on an order, keyed by order, drug name and batch number.
type OrderedDrug struct {
	OrderID     int64    `db:"order_id" json:"order_id"`
	DrugName    string   `db:"drug_name" json:"drug_name" validate:"required"`
	BatchNumber string   `db:"batch_number" json:"batch_number" validate:"required"`
	Quantity    *int64   `db:"quantity" json:"quantity,omitempty"`
	Price       *float64 `db:"price" json:"price,omitempty"`
}
