package domain

// Bill settles one order. OrderID is the key; CustomerSSN is carried for lookups by customer.
type Bill struct {
	OrderID         int64    `db:"order_id" json:"order_id"`
	CustomerSSN     string   `db:"customer_ssn" json:"customer_ssn"`
	TotalAmount     *float64 `db:"total_amount" json:"total_amount,omitempty"`
	CustomerPayment *float64 `db:"customer_payment" json:"customer_payment,omitempty"`
}
