package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostdesk/internal/domain/notification"
	"hostdesk/internal/infrastructure/persistence/mappers"
	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/logger"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(
	db *gorm.DB,
	logger logger.Interface,
) *NotificationRepositoryImpl {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification in database", "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set notification ID", "error", err)
		return fmt.Errorf("failed to set notification ID: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get notification by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*notification.Notification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []models.NotificationModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	items := make([]*notification.Notification, 0, len(modelList))
	for i := range modelList {
		entity, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map notification model", "id", modelList[i].ID, "error", err)
			return nil, 0, fmt.Errorf("failed to map notification: %w", err)
		}
		items = append(items, entity)
	}
	return items, total, nil
}

func (r *NotificationRepositoryImpl) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification as read", "id", id, "error", result.Error)
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context) error {
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
	if err != nil {
		r.logger.Errorw("failed to mark all notifications as read", "error", err)
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete notification", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotFound
	}
	return nil
}
