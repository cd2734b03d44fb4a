package domain

// Employee is a staff account. Orders refer to it through EmployeeID.
type Employee struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"password,omitempty" db:"password"`
	Role      string `json:"role" db:"role"`
	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
}

// Staff roles accepted at registration.
const (
	RolePharmacist = "pharmacist"
	RoleManager    = "manager"
)
