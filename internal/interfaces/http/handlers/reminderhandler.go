package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/application/reminder/dto"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"

	reminderusecases "hostdesk/internal/application/reminder/usecases"
	smsusecases "hostdesk/internal/application/sms/usecases"
)

type ReminderHandler struct {
	runReminders *reminderusecases.RunRemindersUseCase
	sendTestSMS  *smsusecases.SendTestSMSUseCase
	listSMSLogs  *smsusecases.ListSMSLogsUseCase
	logger       logger.Interface
}

func NewReminderHandler(
	runReminders *reminderusecases.RunRemindersUseCase,
	sendTestSMS *smsusecases.SendTestSMSUseCase,
	listSMSLogs *smsusecases.ListSMSLogsUseCase,
	logger logger.Interface,
) *ReminderHandler {
	return &ReminderHandler{
		runReminders: runReminders,
		sendTestSMS:  sendTestSMS,
		listSMSLogs:  listSMSLogs,
		logger:       logger,
	}
}

// Check triggers a reminder run. An empty body means a normal run; reset
// re-delivers reminders for subscriptions still inside the windows.
func (h *ReminderHandler) Check(c *gin.Context) {
	var req dto.RunRemindersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.runReminders.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("reminder run failed", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "reminder run failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

type testSMSRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Template   string `json:"template" binding:"required"`
	CustomText string `json:"custom_text"`
}

// TestSMS sends one of the fixed templates, or custom text, to a customer.
func (h *ReminderHandler) TestSMS(c *gin.Context) {
	var req testSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "customer_id and template are required")
		return
	}

	result, err := h.sendTestSMS.Execute(c.Request.Context(), smsusecases.SendTestSMSCommand{
		CustomerID: req.CustomerID,
		Template:   smsusecases.TestTemplate(req.Template),
		CustomText: req.CustomText,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// SMSLogs returns the SMS audit log, newest first.
func (h *ReminderHandler) SMSLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.listSMSLogs.Execute(c.Request.Context(), limit, offset)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, list)
}
