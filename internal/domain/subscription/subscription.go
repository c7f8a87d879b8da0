package subscription

import (
	"fmt"
	"time"

	"hostdesk/internal/shared/biztime"

	vo "hostdesk/internal/domain/subscription/valueobjects"
)

// Subscription represents one yearly pay period of a domain. It is the
// aggregate root for the reminder lifecycle: status transitions and the two
// monotonic reminder-sent flags live here.
type Subscription struct {
	id                   uint
	customerID           uint
	domainID             uint
	yearlyCost           float64
	domainCost           *float64
	boughtDomain         bool
	beginDate            time.Time
	expireDate           time.Time
	status               vo.SubscriptionStatus
	cancelledAt          *time.Time
	cancelReason         *string
	oneMonthReminderSent bool
	oneWeekReminderSent  bool
	createdAt            time.Time
	updatedAt            time.Time
}

// NewSubscription creates a new active subscription for a domain pay period.
// The expire date is always begin date plus exactly one calendar year.
func NewSubscription(customerID, domainID uint, yearlyCost float64, domainCost *float64, boughtDomain bool, beginDate time.Time) (*Subscription, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if domainID == 0 {
		return nil, fmt.Errorf("domain ID is required")
	}
	if yearlyCost < 0 {
		return nil, fmt.Errorf("yearly cost cannot be negative")
	}
	if domainCost != nil && *domainCost < 0 {
		return nil, fmt.Errorf("domain cost cannot be negative")
	}
	if beginDate.IsZero() {
		return nil, fmt.Errorf("begin date is required")
	}

	now := biztime.NowUTC()
	return &Subscription{
		customerID:   customerID,
		domainID:     domainID,
		yearlyCost:   yearlyCost,
		domainCost:   domainCost,
		boughtDomain: boughtDomain,
		beginDate:    beginDate,
		expireDate:   beginDate.AddDate(1, 0, 0),
		status:       vo.StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// SubscriptionReconstructParams carries persisted state back into the aggregate.
type SubscriptionReconstructParams struct {
	ID                   uint
	CustomerID           uint
	DomainID             uint
	YearlyCost           float64
	DomainCost           *float64
	BoughtDomain         bool
	BeginDate            time.Time
	ExpireDate           time.Time
	Status               vo.SubscriptionStatus
	CancelledAt          *time.Time
	CancelReason         *string
	OneMonthReminderSent bool
	OneWeekReminderSent  bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.CustomerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if p.DomainID == 0 {
		return nil, fmt.Errorf("domain ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	if p.CancelledAt != nil && p.Status != vo.StatusCancelled {
		return nil, fmt.Errorf("subscription with cancelled_at set must have cancelled status")
	}
	if !p.ExpireDate.After(p.BeginDate) {
		return nil, fmt.Errorf("expire date must be after begin date")
	}

	return &Subscription{
		id:                   p.ID,
		customerID:           p.CustomerID,
		domainID:             p.DomainID,
		yearlyCost:           p.YearlyCost,
		domainCost:           p.DomainCost,
		boughtDomain:         p.BoughtDomain,
		beginDate:            p.BeginDate,
		expireDate:           p.ExpireDate,
		status:               p.Status,
		cancelledAt:          p.CancelledAt,
		cancelReason:         p.CancelReason,
		oneMonthReminderSent: p.OneMonthReminderSent,
		oneWeekReminderSent:  p.OneWeekReminderSent,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) CustomerID() uint              { return s.customerID }
func (s *Subscription) DomainID() uint                { return s.domainID }
func (s *Subscription) YearlyCost() float64           { return s.yearlyCost }
func (s *Subscription) DomainCost() *float64          { return s.domainCost }
func (s *Subscription) BoughtDomain() bool            { return s.boughtDomain }
func (s *Subscription) BeginDate() time.Time          { return s.beginDate }
func (s *Subscription) ExpireDate() time.Time         { return s.expireDate }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) CancelledAt() *time.Time       { return s.cancelledAt }
func (s *Subscription) CancelReason() *string         { return s.cancelReason }
func (s *Subscription) OneMonthReminderSent() bool    { return s.oneMonthReminderSent }
func (s *Subscription) OneWeekReminderSent() bool     { return s.oneWeekReminderSent }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// ReminderSent reports whether the given reminder kind was already dispatched.
func (s *Subscription) ReminderSent(kind vo.ReminderKind) bool {
	switch kind {
	case vo.ReminderOneMonth:
		return s.oneMonthReminderSent
	case vo.ReminderOneWeek:
		return s.oneWeekReminderSent
	default:
		return false
	}
}

// MarkReminderSent flips the sent flag for the given kind. Flags are
// monotonic: there is no unset operation on the aggregate, only the explicit
// repository-level reset used by the reminder run's reset mode.
func (s *Subscription) MarkReminderSent(kind vo.ReminderKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid reminder kind: %s", kind)
	}
	switch kind {
	case vo.ReminderOneMonth:
		s.oneMonthReminderSent = true
	case vo.ReminderOneWeek:
		s.oneWeekReminderSent = true
	}
	s.updatedAt = biztime.NowUTC()
	return nil
}

// IsExpired checks the expire date against the given moment.
func (s *Subscription) IsExpired(now time.Time) bool {
	return now.After(s.expireDate)
}

// MarkAsExpired transitions an active subscription to expired.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot mark subscription as expired with status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel cancels a subscription with a reason.
func (s *Subscription) Cancel(reason string) error {
	if s.status == vo.StatusCancelled {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel subscription with status %s", s.status)
	}
	now := biztime.NowUTC()
	s.status = vo.StatusCancelled
	s.cancelledAt = &now
	if reason != "" {
		s.cancelReason = &reason
	}
	s.updatedAt = now
	return nil
}

// Complete transitions a subscription to done. Used when a new pay period is
// recorded for the same domain: at most one subscription per domain is active.
func (s *Subscription) Complete() error {
	if s.status == vo.StatusDone {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusDone) {
		return fmt.Errorf("cannot complete subscription with status %s", s.status)
	}
	s.status = vo.StatusDone
	s.updatedAt = biztime.NowUTC()
	return nil
}
