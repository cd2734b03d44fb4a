package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmacy/m/domain"
	"pharmacy/m/internal/database"
)

type notificationQueries struct {
	list   string
	get    string
	create string
	update string
	delete string
	// updateArgs orders (id, message, type) for the update statement.
	updateArgs func(n *domain.Notification) []any
}

// PostgreSQL: every call goes through the routines installed by migrations.
var procedureQueries = notificationQueries{
	list:   `SELECT id, message, type FROM get_notifications()`,
	get:    `SELECT id, message, type FROM get_notification($1)`,
	create: `SELECT create_notification($1, $2)`,
	update: `CALL update_notification($1, $2, $3)`,
	delete: `CALL delete_notification($1)`,
	updateArgs: func(n *domain.Notification) []any {
		return []any{n.ID, n.Message, n.Type}
	},
}

// SQLite has no stored routines, so the same operations run as plain statements.
var tableQueries = notificationQueries{
	list:   `SELECT id, message, type FROM notifications`,
	get:    `SELECT id, message, type FROM notifications WHERE id = ?`,
	create: `INSERT INTO notifications (message, type) VALUES (?, ?) RETURNING id`,
	update: `UPDATE notifications SET message = ?, type = ? WHERE id = ?`,
	delete: `DELETE FROM notifications WHERE id = ?`,
	updateArgs: func(n *domain.Notification) []any {
		return []any{n.Message, n.Type, n.ID}
	},
}

// Notifications is the repository for the notifications table.
type Notifications struct {
	db *sqlx.DB
	q  notificationQueries
}

// NewNotifications returns a Notifications backed by db.
func NewNotifications(db *sqlx.DB) *Notifications {
	q := tableQueries
	if database.IsPostgres(db) {
		q = procedureQueries
	}
	return &Notifications{db: db, q: q}
}

// Get returns the notification with the given key, or ErrNotFound.
func (s *Notifications) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	if err := s.db.GetContext(ctx, &n, s.q.get, id); err != nil {
		return nil, notFound(err, "notification")
	}
	return &n, nil
}

// List returns every notification.
func (s *Notifications) List(ctx context.Context) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	if err := s.db.SelectContext(ctx, &notifications, s.q.list); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// Create ignores n.ID; the store assigns it and it is written back to n.
func (s *Notifications) Create(ctx context.Context, n *domain.Notification) error {
	if err := s.db.QueryRowxContext(ctx, s.q.create, n.Message, n.Type).Scan(&n.ID); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// Update overwrites the stored notification with the same key. A missing key is a no-op.
func (s *Notifications) Update(ctx context.Context, n *domain.Notification) error {
	if _, err := s.db.ExecContext(ctx, s.q.update, s.q.updateArgs(n)...); err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// Delete removes the notification. A missing key is a no-op.
func (s *Notifications) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.q.delete, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
