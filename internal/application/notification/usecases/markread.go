package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/notification"
	"hostdesk/internal/shared/logger"
)

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, id uint) error {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "error", err, "notification_id", id)
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n == nil {
		return notification.ErrNotFound
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, id); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "error", err, "notification_id", id)
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context) error {
	if err := uc.notificationRepo.MarkAllAsRead(ctx); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "error", err)
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}
