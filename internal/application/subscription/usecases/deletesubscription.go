package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/logger"
)

type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, id uint) error {
	sub, err := uc.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrNotFound
	}

	if err := uc.subscriptionRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete subscription", "error", err, "subscription_id", id)
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	uc.logger.Infow("subscription deleted", "subscription_id", id)
	return nil
}
