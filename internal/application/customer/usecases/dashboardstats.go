package usecases

import (
	"context"
	"fmt"
	"time"

	"hostdesk/internal/application/customer/dto"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/setting"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
)

// DashboardStatsUseCase aggregates the landing-page counters. The monthly cost
// per user splits the configured server cost across customers that currently
// hold an active subscription.
type DashboardStatsUseCase struct {
	customerRepo customer.Repository
	stats        SubscriptionStats
	settingRepo  setting.Repository
	now          func() time.Time
	logger       logger.Interface
}

func NewDashboardStatsUseCase(
	customerRepo customer.Repository,
	stats SubscriptionStats,
	settingRepo setting.Repository,
	now func() time.Time,
	logger logger.Interface,
) *DashboardStatsUseCase {
	if now == nil {
		now = biztime.NowUTC
	}
	return &DashboardStatsUseCase{
		customerRepo: customerRepo,
		stats:        stats,
		settingRepo:  settingRepo,
		now:          now,
		logger:       logger,
	}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	total, err := uc.customerRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count customers", "error", err)
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	active, err := uc.stats.CountActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count active subscriptions", "error", err)
		return nil, fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	now := uc.now()
	expiring, err := uc.stats.CountExpiringBetween(ctx, now, biztime.AddCalendarMonths(now, 1))
	if err != nil {
		uc.logger.Errorw("failed to count expiring subscriptions", "error", err)
		return nil, fmt.Errorf("failed to count expiring subscriptions: %w", err)
	}

	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load settings, using defaults", "error", err)
		settings = setting.Defaults()
	}

	var costPerUser float64
	if settings.ServerMonthlyCost > 0 {
		payers, err := uc.stats.CountCustomersWithActive(ctx)
		if err != nil {
			uc.logger.Errorw("failed to count paying customers", "error", err)
			return nil, fmt.Errorf("failed to count paying customers: %w", err)
		}
		if payers > 0 {
			costPerUser = settings.ServerMonthlyCost / float64(payers)
		}
	}

	return &dto.DashboardStatsDTO{
		TotalCustomers:      total,
		ActiveSubscriptions: active,
		ExpiringThisMonth:   expiring,
		MonthlyCostPerUser:  costPerUser,
	}, nil
}
