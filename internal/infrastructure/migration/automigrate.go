package migration

import (
	"fmt"

	"gorm.io/gorm"

	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.DomainModel{},
		&models.SubscriptionModel{},
		&models.NotificationModel{},
		&models.SettingsModel{},
		&models.SMSLogModel{},
	}
}

// Run applies the schema for all registered models.
func Run(db *gorm.DB) error {
	logger.Info("running schema migration")

	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("schema migration completed")
	return nil
}
