package models

import (
	"time"

	"hostdesk/internal/shared/constants"
)

// CustomerModel represents the database persistence model for customers
// This is the anti-corruption layer between domain and database
type CustomerModel struct {
	ID        uint   `gorm:"primarykey"`
	Username  string `gorm:"not null;size:100"`
	Company   string `gorm:"not null;size:20;default:Others;index:idx_company"`
	Phone     string `gorm:"not null;size:20;index:idx_phone"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
