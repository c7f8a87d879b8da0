package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. The reminder flags are monotonic under normal operation and
// only ever cleared by an explicit reset.
type SubscriptionModel struct {
	ID                   uint    `gorm:"primarykey"`
	CustomerID           uint    `gorm:"not null;index:idx_sub_customer"`
	DomainID             uint    `gorm:"not null;index:idx_sub_domain"`
	YearlyCost           float64 `gorm:"not null"`
	DomainCost           *float64
	BoughtDomain         bool      `gorm:"default:false"`
	BeginDate            time.Time `gorm:"not null"`
	ExpireDate           time.Time `gorm:"not null;index:idx_sub_expire"`
	Status               string    `gorm:"not null;size:20;default:active;index:idx_sub_status"`
	CancelledAt          *time.Time
	CancelReason         *string `gorm:"size:500"`
	OneMonthReminderSent bool    `gorm:"not null;default:false"`
	OneWeekReminderSent  bool    `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
