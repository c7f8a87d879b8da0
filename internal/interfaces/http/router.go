package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customerusecases "hostdesk/internal/application/customer/usecases"
	notificationusecases "hostdesk/internal/application/notification/usecases"
	reminderusecases "hostdesk/internal/application/reminder/usecases"
	settingusecases "hostdesk/internal/application/setting/usecases"
	smsusecases "hostdesk/internal/application/sms/usecases"
	subscriptionusecases "hostdesk/internal/application/subscription/usecases"
	"hostdesk/internal/infrastructure/auth"
	"hostdesk/internal/infrastructure/config"
	smsinfra "hostdesk/internal/infrastructure/sms"
	"hostdesk/internal/interfaces/http/handlers"
	"hostdesk/internal/interfaces/http/middleware"
	"hostdesk/internal/shared/authorization"
	"hostdesk/internal/shared/logger"
	"hostdesk/internal/shared/utils"

	"hostdesk/internal/infrastructure/repository"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	customerHandler     *handlers.CustomerHandler
	subscriptionHandler *handlers.SubscriptionHandler
	notificationHandler *handlers.NotificationHandler
	settingHandler      *handlers.SettingHandler
	reminderHandler     *handlers.ReminderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter builds the full dependency graph for the HTTP interface.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	customerRepo := repository.NewCustomerRepository(db, log)
	domainRepo := repository.NewDomainRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db, log)
	settingRepo := repository.NewSettingRepository(db, log)
	smsLogRepo := repository.NewSMSLogRepository(db, log)

	gateway := smsinfra.NewClient(cfg.SMS, log)
	hasher := auth.NewBcryptPasswordHasher(0)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	createCustomerUC := customerusecases.NewCreateCustomerUseCase(customerRepo, log)
	updateCustomerUC := customerusecases.NewUpdateCustomerUseCase(customerRepo, log)
	deleteCustomerUC := customerusecases.NewDeleteCustomerUseCase(customerRepo, log)
	getCustomerUC := customerusecases.NewGetCustomerUseCase(customerRepo, domainRepo, subscriptionRepo, log)
	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, domainRepo, subscriptionRepo, log)
	addDomainUC := customerusecases.NewAddDomainUseCase(customerRepo, domainRepo, log)
	dashboardStatsUC := customerusecases.NewDashboardStatsUseCase(customerRepo, subscriptionRepo, settingRepo, nil, log)

	recordPaymentUC := subscriptionusecases.NewRecordPaymentUseCase(
		subscriptionRepo, customerRepo, domainRepo, notificationRepo, gateway, smsLogRepo, log,
	)
	cancelSubscriptionUC := subscriptionusecases.NewCancelSubscriptionUseCase(
		subscriptionRepo, customerRepo, domainRepo, notificationRepo, gateway, smsLogRepo, log,
	)
	getSubscriptionUC := subscriptionusecases.NewGetSubscriptionUseCase(subscriptionRepo, log)
	listSubscriptionsUC := subscriptionusecases.NewListSubscriptionsUseCase(subscriptionRepo, log)
	deleteSubscriptionUC := subscriptionusecases.NewDeleteSubscriptionUseCase(subscriptionRepo, log)

	listNotificationsUC := notificationusecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationusecases.NewMarkNotificationReadUseCase(notificationRepo, log)
	markAllReadUC := notificationusecases.NewMarkAllNotificationsReadUseCase(notificationRepo, log)
	deleteNotificationUC := notificationusecases.NewDeleteNotificationUseCase(notificationRepo, log)

	getSettingsUC := settingusecases.NewGetSettingsUseCase(settingRepo, log)
	updateSettingsUC := settingusecases.NewUpdateSettingsUseCase(settingRepo, log)

	runRemindersUC := reminderusecases.NewRunRemindersUseCase(
		subscriptionRepo, notificationRepo, settingRepo, gateway, smsLogRepo, nil, log,
	)
	sendTestSMSUC := smsusecases.NewSendTestSMSUseCase(customerRepo, gateway, smsLogRepo, nil, log)
	listSMSLogsUC := smsusecases.NewListSMSLogsUseCase(smsLogRepo, log)

	return &Router{
		engine: engine,
		authHandler: handlers.NewAuthHandler(
			jwtService, hasher, cfg.Auth.Admin, log,
		),
		customerHandler: handlers.NewCustomerHandler(
			createCustomerUC, updateCustomerUC, deleteCustomerUC,
			getCustomerUC, listCustomersUC, addDomainUC, dashboardStatsUC, log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			recordPaymentUC, cancelSubscriptionUC, getSubscriptionUC,
			listSubscriptionsUC, deleteSubscriptionUC, log,
		),
		notificationHandler: handlers.NewNotificationHandler(
			listNotificationsUC, markReadUC, markAllReadUC, deleteNotificationUC, log,
		),
		settingHandler:  handlers.NewSettingHandler(getSettingsUC, updateSettingsUC, log),
		reminderHandler: handlers.NewReminderHandler(runRemindersUC, sendTestSMSUC, listSMSLogsUC, log),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	api.POST("/auth/login", r.authHandler.Login)

	admin := api.Group("")
	admin.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/dashboard/stats", r.customerHandler.DashboardStats)

		admin.POST("/customers", r.customerHandler.Create)
		admin.GET("/customers", r.customerHandler.List)
		admin.GET("/customers/:id", r.customerHandler.Get)
		admin.PUT("/customers/:id", r.customerHandler.Update)
		admin.DELETE("/customers/:id", r.customerHandler.Delete)
		admin.POST("/customers/:id/domains", r.customerHandler.AddDomain)
		admin.GET("/customers/:id/subscriptions", r.subscriptionHandler.ListByCustomer)

		admin.POST("/subscriptions", r.subscriptionHandler.RecordPayment)
		admin.GET("/subscriptions/:id", r.subscriptionHandler.Get)
		admin.POST("/subscriptions/:id/cancel", r.subscriptionHandler.Cancel)
		admin.DELETE("/subscriptions/:id", r.subscriptionHandler.Delete)

		admin.GET("/notifications", r.notificationHandler.List)
		admin.PUT("/notifications/read-all", r.notificationHandler.MarkAllRead)
		admin.PUT("/notifications/:id/read", r.notificationHandler.MarkRead)
		admin.DELETE("/notifications/:id", r.notificationHandler.Delete)

		admin.GET("/settings", r.settingHandler.Get)
		admin.PUT("/settings", r.settingHandler.Update)

		admin.POST("/reminders/check", r.reminderHandler.Check)
		admin.POST("/sms/test", r.reminderHandler.TestSMS)
		admin.GET("/sms/logs", r.reminderHandler.SMSLogs)
	}
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
