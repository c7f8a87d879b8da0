package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/notification"
	"hostdesk/internal/shared/logger"
)

type DeleteNotificationUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewDeleteNotificationUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, id uint) error {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "error", err, "notification_id", id)
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n == nil {
		return notification.ErrNotFound
	}

	if err := uc.notificationRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete notification", "error", err, "notification_id", id)
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
