package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/application/notification/dto"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, limit, offset int) (*dto.NotificationListDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.notificationRepo.List(ctx, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.UnreadCount(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &dto.NotificationListDTO{
		Notifications: dto.ToNotificationDTOList(items),
		Total:         total,
		UnreadCount:   unread,
	}, nil
}
