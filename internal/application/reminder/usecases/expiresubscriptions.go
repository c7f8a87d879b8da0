package usecases

import (
	"context"
	"fmt"
	"time"

	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
)

// ExpireSubscriptionsUseCase transitions active subscriptions whose expire
// date is strictly in the past to expired. It runs at the start of every
// reminder run and is safe to repeat: the bulk update only touches rows that
// still match.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	now              func() time.Time
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	now func() time.Time,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	if now == nil {
		now = biztime.NowUTC
	}
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		now:              now,
		logger:           logger,
	}
}

// Execute marks overdue subscriptions as expired and returns how many rows
// changed. A subscription expiring today is still active until the business
// day ends.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int64, error) {
	startOfToday := biztime.StartOfDayUTC(uc.now())

	count, err := uc.subscriptionRepo.MarkExpired(ctx, startOfToday)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired subscriptions: %w", err)
	}

	if count > 0 {
		uc.logger.Infow("marked overdue subscriptions as expired", "count", count)
	}

	return count, nil
}
