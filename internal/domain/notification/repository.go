package notification

import "context"

// Repository defines notification persistence operations.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	List(ctx context.Context, limit, offset int) ([]*Notification, int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id uint) error
}
