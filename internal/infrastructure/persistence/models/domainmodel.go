package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// DomainModel represents the database persistence model for hosted domains
type DomainModel struct {
	ID                 uint    `gorm:"primarykey"`
	CustomerID         uint    `gorm:"not null;index:idx_domain_customer"`
	URL                string  `gorm:"not null;size:255;index:idx_domain_url"`
	WPAdminURL         *string `gorm:"size:500"`
	WPSecretKey        *string `gorm:"size:255"`
	WPUpdateAvailable  bool    `gorm:"default:false"`
	PluginUpdatesCount int     `gorm:"default:0"`
	ThemeUpdatesCount  int     `gorm:"default:0"`
	LastChecked        *time.Time
	CreatedAt          time.Time
}

// TableName specifies the table name for GORM
func (DomainModel) TableName() string {
	return constants.TableDomains
}
