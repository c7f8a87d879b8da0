package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// SettingsModel is the singleton settings row. A fixed primary key keeps it
// single by construction.
type SettingsModel struct {
	ID                      uint    `gorm:"primarykey"`
	AdminPhone              string  `gorm:"not null;size:20"`
	AutoMessagesEnabled     bool    `gorm:"not null;default:true"`
	ServerMonthlyCost       float64 `gorm:"not null;default:0"`
	SMSSource               string  `gorm:"size:20"`
	SMSUsername             string  `gorm:"size:100"`
	SMSToken                string  `gorm:"size:500"`
	AutoWordPressUpdates    bool    `gorm:"not null;default:false"`
	WordPressUpdateSchedule string  `gorm:"size:50"`
	UpdatedAt               time.Time
}

// TableName specifies the table name for GORM
func (SettingsModel) TableName() string {
	return constants.TableSettings
}
