package service

import (
	"context"

	"pharmacy/m/domain"
)

// NotificationRepository is satisfied by the stored-procedure backed store on
// PostgreSQL and by plain statements elsewhere; callers cannot tell them apart.
type NotificationRepository interface {
	Get(ctx context.Context, id int64) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	Update(ctx context.Context, n *domain.Notification) error
	Delete(ctx context.Context, id int64) error
}

// NotificationService serves notification requests from the API.
type NotificationService struct {
	repo NotificationRepository
}

// NewNotificationService returns a NotificationService backed by repo.
func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Get returns one notification.
func (s *NotificationService) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.repo.Get(ctx, id)
}

// List returns every notification.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.List(ctx)
}

// Create stores a new notification.
func (s *NotificationService) Create(ctx context.Context, n *domain.Notification) error {
	return s.repo.Create(ctx, n)
}

// Update overwrites the stored notification with the same key. A missing key is a no-op.
func (s *NotificationService) Update(ctx context.Context, n *domain.Notification) error {
	return s.repo.Update(ctx, n)
}

// Delete removes the notification. A missing key is a no-op.
func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
