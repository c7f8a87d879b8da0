package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// SMSLogModel represents the database persistence model for SMS audit records
type SMSLogModel struct {
	ID       uint    `gorm:"primarykey"`
	Phone    string  `gorm:"not null;size:20;index:idx_smslog_phone"`
	Message  string  `gorm:"not null;size:1000"`
	Status   string  `gorm:"not null;size:20;index:idx_smslog_status"`
	Response *string `gorm:"size:2000"`
	SentAt   time.Time
}

// TableName specifies the table name for GORM
func (SMSLogModel) TableName() string {
	return constants.TableSMSLogs
}
