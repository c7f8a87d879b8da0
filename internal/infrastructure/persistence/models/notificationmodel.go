package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// NotificationModel represents the database persistence model for the admin
// inbox.
type NotificationModel struct {
	ID         uint    `gorm:"primarykey"`
	CustomerID *uint   `gorm:"index:idx_notif_customer"`
	Type       string  `gorm:"not null;size:40;index:idx_notif_type"`
	Title      string  `gorm:"not null;size:255"`
	Message    string  `gorm:"not null;size:1000"`
	ActionURL  *string `gorm:"size:500"`
	IsRead     bool    `gorm:"not null;default:false;index:idx_notif_read"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
