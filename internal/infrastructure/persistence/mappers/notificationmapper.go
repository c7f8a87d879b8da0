package mappers

import (
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/infrastructure/persistence/models"

	notifvo "hostdesk/internal/domain/notification/valueobjects"
)

// NotificationMapper handles conversion between Notification domain and model.
type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:         n.ID(),
		CustomerID: n.CustomerID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		ActionURL:  n.ActionURL(),
		IsRead:     n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		notifvo.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.ActionURL,
		model.CustomerID,
		model.IsRead,
		model.CreatedAt,
	)
}
