package usecases

import (
	"context"
	"time"

	"hostdesk/internal/domain/subscription"
)

// SubscriptionStats exposes the aggregate queries the dashboard needs without
// pulling in the full subscription repository.
type SubscriptionStats interface {
	CountActive(ctx context.Context) (int64, error)
	CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountCustomersWithActive(ctx context.Context) (int64, error)
}

// SubscriptionSource lists a customer's subscriptions, newest first. The
// customer views only need the head of that list.
type SubscriptionSource interface {
	ListByCustomer(ctx context.Context, customerID uint) ([]*subscription.Subscription, error)
}
