package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/application/subscription/dto"
	"hostdesk/internal/application/subscription/usecases"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"
)

type SubscriptionHandler struct {
	recordPayment      *usecases.RecordPaymentUseCase
	cancelSubscription *usecases.CancelSubscriptionUseCase
	getSubscription    *usecases.GetSubscriptionUseCase
	listSubscriptions  *usecases.ListSubscriptionsUseCase
	deleteSubscription *usecases.DeleteSubscriptionUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	recordPayment *usecases.RecordPaymentUseCase,
	cancelSubscription *usecases.CancelSubscriptionUseCase,
	getSubscription *usecases.GetSubscriptionUseCase,
	listSubscriptions *usecases.ListSubscriptionsUseCase,
	deleteSubscription *usecases.DeleteSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		recordPayment:      recordPayment,
		cancelSubscription: cancelSubscription,
		getSubscription:    getSubscription,
		listSubscriptions:  listSubscriptions,
		deleteSubscription: deleteSubscription,
		logger:             logger,
	}
}

type recordPaymentRequest struct {
	CustomerID   uint     `json:"customer_id" binding:"required"`
	DomainID     uint     `json:"domain_id" binding:"required"`
	YearlyCost   float64  `json:"yearly_cost" binding:"required,gt=0"`
	DomainCost   *float64 `json:"domain_cost"`
	BoughtDomain bool     `json:"bought_domain"`
	BeginDate    string   `json:"begin_date" binding:"required"`
}

// RecordPayment opens a new one-year subscription starting at begin_date
// (YYYY-MM-DD, interpreted in the business timezone).
func (h *SubscriptionHandler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	beginDate, err := biztime.ParseDateInBizTimezone(req.BeginDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "begin_date must be YYYY-MM-DD")
		return
	}

	sub, err := h.recordPayment.Execute(c.Request.Context(), usecases.RecordPaymentCommand{
		CustomerID:   req.CustomerID,
		DomainID:     req.DomainID,
		YearlyCost:   req.YearlyCost,
		DomainCost:   req.DomainCost,
		BoughtDomain: req.BoughtDomain,
		BeginDate:    beginDate,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToSubscriptionDTO(sub))
}

type cancelSubscriptionRequest struct {
	Reason string `json:"reason"`
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req cancelSubscriptionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sub, err := h.cancelSubscription.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: id,
		Reason:         req.Reason,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToSubscriptionDTO(sub))
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.getSubscription.Execute(c.Request.Context(), id)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToSubscriptionDTO(sub))
}

// ListByCustomer returns a customer's subscriptions, newest first.
func (h *SubscriptionHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subs, err := h.listSubscriptions.Execute(c.Request.Context(), customerID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToSubscriptionDTOList(subs))
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteSubscription.Execute(c.Request.Context(), id); err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
