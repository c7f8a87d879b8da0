package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostdesk/internal/application/customer/dto"
	"hostdesk/internal/application/customer/usecases"
	"hostdesk/internal/domain/customer"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"
)

type CustomerHandler struct {
	createCustomer *usecases.CreateCustomerUseCase
	updateCustomer *usecases.UpdateCustomerUseCase
	deleteCustomer *usecases.DeleteCustomerUseCase
	getCustomer    *usecases.GetCustomerUseCase
	listCustomers  *usecases.ListCustomersUseCase
	addDomain      *usecases.AddDomainUseCase
	dashboardStats *usecases.DashboardStatsUseCase
	logger         logger.Interface
}

func NewCustomerHandler(
	createCustomer *usecases.CreateCustomerUseCase,
	updateCustomer *usecases.UpdateCustomerUseCase,
	deleteCustomer *usecases.DeleteCustomerUseCase,
	getCustomer *usecases.GetCustomerUseCase,
	listCustomers *usecases.ListCustomersUseCase,
	addDomain *usecases.AddDomainUseCase,
	dashboardStats *usecases.DashboardStatsUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomer: createCustomer,
		updateCustomer: updateCustomer,
		deleteCustomer: deleteCustomer,
		getCustomer:    getCustomer,
		listCustomers:  listCustomers,
		addDomain:      addDomain,
		dashboardStats: dashboardStats,
		logger:         logger,
	}
}

type customerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Company  string `json:"company"`
	Phone    string `json:"phone" validate:"required,localphone"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cust, err := h.createCustomer.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		Username: req.Username,
		Company:  customer.Company(req.Company),
		Phone:    req.Phone,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToCustomerDTO(cust))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cust, err := h.updateCustomer.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		CustomerID: id,
		Username:   req.Username,
		Company:    customer.Company(req.Company),
		Phone:      req.Phone,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToCustomerDTO(cust))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteCustomer.Execute(c.Request.Context(), id); err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.getCustomer.Execute(c.Request.Context(), id)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, dto.ToCustomerDetailDTO(detail.Customer, detail.Domains, detail.LatestSubscription))
}

func (h *CustomerHandler) List(c *gin.Context) {
	details, err := h.listCustomers.Execute(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	dtos := make([]*dto.CustomerDetailDTO, 0, len(details))
	for _, d := range details {
		dtos = append(dtos, dto.ToCustomerDetailDTO(d.Customer, d.Domains, d.LatestSubscription))
	}
	utils.OKResponse(c, dtos)
}

type addDomainRequest struct {
	URL        string `json:"url" validate:"required,max=255"`
	WPAdminURL string `json:"wp_admin_url"`
	WPSecret   string `json:"wp_secret"`
}

// AddDomain attaches a domain to a customer, optionally with its
// WordPress maintenance endpoint.
func (h *CustomerHandler) AddDomain(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req addDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	dom, err := h.addDomain.Execute(c.Request.Context(), usecases.AddDomainCommand{
		CustomerID: id,
		URL:        req.URL,
		WPAdminURL: req.WPAdminURL,
		WPSecret:   req.WPSecret,
	})
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToDomainDTO(dom))
}

// DashboardStats serves the landing-page counters.
func (h *CustomerHandler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboardStats.Execute(c.Request.Context())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	utils.OKResponse(c, stats)
}
