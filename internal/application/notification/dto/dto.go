package dto

import (
	"time"

	"hostdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID         uint      `json:"id"`
	CustomerID *uint     `json:"customer_id,omitempty"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	ActionURL  *string   `json:"action_url,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationListDTO struct {
	Notifications []*NotificationDTO `json:"notifications"`
	Total         int64              `json:"total"`
	UnreadCount   int64              `json:"unread_count"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:         n.ID(),
		CustomerID: n.CustomerID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Message:    n.Message(),
		ActionURL:  n.ActionURL(),
		Read:       n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func ToNotificationDTOList(items []*notification.Notification) []*NotificationDTO {
	dtos := make([]*NotificationDTO, 0, len(items))
	for _, n := range items {
		if n != nil {
			dtos = append(dtos, ToNotificationDTO(n))
		}
	}
	return dtos
}
