package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/logger"
)

type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	subs, err := uc.subscriptionRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
