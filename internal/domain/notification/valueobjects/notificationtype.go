package valueobjects

type NotificationType string

const (
	TypeSMSReminder           NotificationType = "sms_reminder"
	TypePaymentReceived       NotificationType = "payment_received"
	TypeSubscriptionCancelled NotificationType = "subscription_cancelled"
	TypeSubscriptionExpiring  NotificationType = "subscription_expiring"
	TypeSystemAlert           NotificationType = "system_alert"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeSMSReminder, TypePaymentReceived, TypeSubscriptionCancelled,
		TypeSubscriptionExpiring, TypeSystemAlert:
		return true
	}
	return false
}
