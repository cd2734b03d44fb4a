package domain

import "time"

// Customer is a pharmacy customer keyed by SSN.
type Customer struct {
	SSN         string     `db:"ssn" json:"ssn" validate:"required"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Phone       string     `db:"phone" json:"phone"`
	Gender      *string    `db:"gender" json:"gender,omitempty" validate:"omitempty,len=1"`
	Address     string     `db:"address" json:"address"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
}
