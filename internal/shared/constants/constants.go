package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Database table names.
const (
	TableCustomers     = "customers"
	TableDomains       = "domains"
	TableSubscriptions = "subscriptions"
	TableNotifications = "notifications"
	TableSettings      = "settings"
	TableSMSLogs       = "sms_logs"
)
