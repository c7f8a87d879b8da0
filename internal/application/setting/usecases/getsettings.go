package usecases

import (
	"context"
	"fmt"

	"hostdesk/internal/domain/setting"
	"hostdesk/internal/shared/logger"
)

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(
	settingRepo setting.Repository,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (setting.Settings, error) {
	settings, err := uc.settingRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load settings", "error", err)
		return setting.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}
