package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hostdesk/internal/domain/setting"
	"hostdesk/internal/infrastructure/persistence/models"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
)

// settingsRowID pins the singleton row.
const settingsRowID = 1

type SettingRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSettingRepository(
	db *gorm.DB,
	logger logger.Interface,
) *SettingRepositoryImpl {
	return &SettingRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SettingRepositoryImpl) Get(ctx context.Context) (setting.Settings, error) {
	var model models.SettingsModel

	err := r.db.WithContext(ctx).First(&model, settingsRowID).Error
	if err == gorm.ErrRecordNotFound {
		defaults := setting.Defaults()
		model = toSettingsModel(defaults)
		model.ID = settingsRowID
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			r.logger.Errorw("failed to seed settings row", "error", err)
			return setting.Settings{}, fmt.Errorf("failed to seed settings: %w", err)
		}
		r.logger.Infow("settings row seeded with defaults")
		return defaults, nil
	}
	if err != nil {
		r.logger.Errorw("failed to load settings", "error", err)
		return setting.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	return toSettings(&model), nil
}

func (r *SettingRepositoryImpl) Update(ctx context.Context, s setting.Settings) error {
	model := toSettingsModel(s)
	model.ID = settingsRowID
	model.UpdatedAt = biztime.NowUTC()

	result := r.db.WithContext(ctx).Model(&models.SettingsModel{}).
		Where("id = ?", settingsRowID).
		Updates(map[string]interface{}{
			"admin_phone":                model.AdminPhone,
			"auto_messages_enabled":      model.AutoMessagesEnabled,
			"server_monthly_cost":        model.ServerMonthlyCost,
			"sms_source":                 model.SMSSource,
			"sms_username":               model.SMSUsername,
			"sms_token":                  model.SMSToken,
			"auto_word_press_updates":    model.AutoWordPressUpdates,
			"word_press_update_schedule": model.WordPressUpdateSchedule,
			"updated_at":                 model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update settings", "error", result.Error)
		return fmt.Errorf("failed to update settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			r.logger.Errorw("failed to create settings row", "error", err)
			return fmt.Errorf("failed to create settings: %w", err)
		}
	}
	return nil
}

func toSettingsModel(s setting.Settings) models.SettingsModel {
	return models.SettingsModel{
		AdminPhone:              s.AdminPhone,
		AutoMessagesEnabled:     s.AutoMessagesEnabled,
		ServerMonthlyCost:       s.ServerMonthlyCost,
		SMSSource:               s.SMSSource,
		SMSUsername:             s.SMSUsername,
		SMSToken:                s.SMSToken,
		AutoWordPressUpdates:    s.AutoWordPressUpdates,
		WordPressUpdateSchedule: s.WordPressUpdateSchedule,
	}
}

func toSettings(model *models.SettingsModel) setting.Settings {
	return setting.Settings{
		AdminPhone:              model.AdminPhone,
		AutoMessagesEnabled:     model.AutoMessagesEnabled,
		ServerMonthlyCost:       model.ServerMonthlyCost,
		SMSSource:               model.SMSSource,
		SMSUsername:             model.SMSUsername,
		SMSToken:                model.SMSToken,
		AutoWordPressUpdates:    model.AutoWordPressUpdates,
		WordPressUpdateSchedule: model.WordPressUpdateSchedule,
	}
}
