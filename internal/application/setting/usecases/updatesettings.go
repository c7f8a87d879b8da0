package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/application/setting/dto"
	"hostdesk/internal/domain/setting"
	"hostdesk/internal/shared/logger"
)

// UpdateSettingsUseCase applies a partial update to the singleton settings
// row. Absent fields keep their stored value; the gateway token in particular
// is only overwritten when explicitly supplied.
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, req dto.UpdateSettingsRequest) (setting.Settings, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return setting.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.AdminPhone != "" {
		settings.AdminPhone = req.AdminPhone
	}
	if req.AutoMessagesEnabled != nil {
		settings.AutoMessagesEnabled = *req.AutoMessagesEnabled
	}
	if req.ServerMonthlyCost != nil {
		settings.ServerMonthlyCost = *req.ServerMonthlyCost
	}
	if req.SMSSource != nil {
		settings.SMSSource = *req.SMSSource
	}
	if req.SMSUsername != nil {
		settings.SMSUsername = *req.SMSUsername
	}
	if req.SMSToken != nil {
		settings.SMSToken = *req.SMSToken
	}
	if req.AutoWordPressUpdates != nil {
		settings.AutoWordPressUpdates = *req.AutoWordPressUpdates
	}
	if req.WordPressUpdateSchedule != nil {
		settings.WordPressUpdateSchedule = *req.WordPressUpdateSchedule
	}

	if err := uc.settingRepo.Update(ctx, settings); err != nil {
		uc.logger.Errorw("failed to update settings", "error", err)
		return setting.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	uc.logger.Infow("settings updated",
		"auto_messages_enabled", settings.AutoMessagesEnabled,
		"admin_phone", settings.AdminPhone,
	)
	return settings, nil
}
