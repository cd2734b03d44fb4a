package domain

// Notification is a free-text message; the store assigns its ID.
type Notification struct {
	ID      int64  `db:"id" json:"id"`
	Message string `db:"message" json:"message"`
	Type    string `db:"type" json:"type"`
}
