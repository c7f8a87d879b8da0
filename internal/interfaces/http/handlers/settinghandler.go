package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/application/setting/dto"
	"hostdesk/internal/application/setting/usecases"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"
)

type SettingHandler struct {
	getSettings    *usecases.GetSettingsUseCase
	updateSettings *usecases.UpdateSettingsUseCase
	logger         logger.Interface
}

func NewSettingHandler(
	getSettings *usecases.GetSettingsUseCase,
	updateSettings *usecases.UpdateSettingsUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getSettings:    getSettings,
		updateSettings: updateSettings,
		logger:         logger,
	}
}

func (h *SettingHandler) Get(c *gin.Context) {
	settings, err := h.getSettings.Execute(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToSettingsDTO(settings))
}

// Update applies a partial settings change. Absent fields keep their
// stored values; the SMS token is only replaced when a new one is sent.
func (h *SettingHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := h.updateSettings.Execute(c.Request.Context(), req)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToSettingsDTO(settings))
}
