package subscription

import (
	"context"
	"time"

	vo "hostdesk/internal/domain/subscription/valueobjects"
)

// DueReminder is one row selected by a reminder pass: the subscription joined
// with its owning domain URL and customer contact details.
type DueReminder struct {
	SubscriptionID uint
	CustomerID     uint
	CustomerName   string
	Phone          string
	DomainID       uint
	DomainURL      string
	YearlyCost     float64
	ExpireDate     time.Time
}

// Repository defines subscription persistence operations.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uint) error

	// ListByCustomer returns all subscriptions for a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uint) ([]*Subscription, error)

	// FindActiveByDomain returns the domain's current active subscription,
	// or nil when there is none.
	FindActiveByDomain(ctx context.Context, domainID uint) (*Subscription, error)

	// MarkExpired bulk-transitions active subscriptions whose expire date is
	// strictly before the given moment to expired. Returns the rows changed.
	MarkExpired(ctx context.Context, before time.Time) (int64, error)

	// ListDueForReminder selects active, non-cancelled subscriptions whose
	// expire date falls inside the window and whose flag for the window's
	// reminder kind is still false, joined with domain and customer.
	ListDueForReminder(ctx context.Context, window ReminderWindow) ([]DueReminder, error)

	// ClaimReminder sets the kind's sent flag to true only where it is
	// currently false. It returns false when no row changed, meaning another
	// run already claimed this reminder and dispatch must be skipped.
	ClaimReminder(ctx context.Context, id uint, kind vo.ReminderKind) (bool, error)

	// ResetReminderFlags clears the kind's sent flag for every active,
	// non-cancelled subscription inside the window. Explicit opt-in only.
	ResetReminderFlags(ctx context.Context, window ReminderWindow) (int64, error)
}
