// Package messages holds the fixed Arabic SMS copy. The exact wording is a
// compatibility surface for SMS cost and encoding, so the templates live in
// one place and every sender renders through them.
package messages

import (
	"fmt"
	"strconv"
	"time"

	"hostdesk/internal/shared/biztime"
)

// FormatExpireDate renders an expire date as DD/MM/YYYY in the business
// timezone, the format embedded in every reminder message.
func FormatExpireDate(t time.Time) string {
	return biztime.FormatInBizTimezone(t, "02/01/2006")
}

func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

// CustomerOneMonth is the customer-facing one-month expiry reminder.
func CustomerOneMonth(username, domainURL string, expireDate time.Time, yearlyCost float64) string {
	return fmt.Sprintf(`تذكير! 🔔
عزيزي %s،
اشتراكك في %s سينتهي خلال شهر واحد.
تاريخ الانتهاء: %s
المبلغ السنوي: %s ₪
الرجاء التواصل للتجديد قريباً.`, username, domainURL, FormatExpireDate(expireDate), formatCost(yearlyCost))
}

// AdminOneMonth is the admin copy of the one-month reminder, with the
// customer's phone appended for follow-up.
func AdminOneMonth(username, domainURL string, expireDate time.Time, yearlyCost float64, phone string) string {
	return fmt.Sprintf(`تنبيه اشتراك! 🔔
العميل: %s
الدومين: %s
سينتهي خلال شهر: %s
المبلغ: %s ₪
الهاتف: %s`, username, domainURL, FormatExpireDate(expireDate), formatCost(yearlyCost), phone)
}

// CustomerOneWeek is the customer-facing one-week expiry reminder.
func CustomerOneWeek(username, domainURL string, expireDate time.Time, yearlyCost float64) string {
	return fmt.Sprintf(`تنبيه هام! ⚠️
عزيزي %s،
اشتراكك في %s سينتهي خلال أسبوع!
تاريخ الانتهاء: %s
المبلغ السنوي: %s ₪
يرجى التجديد في أقرب وقت.`, username, domainURL, FormatExpireDate(expireDate), formatCost(yearlyCost))
}

// AdminOneWeek is the admin copy of the one-week reminder.
func AdminOneWeek(username, domainURL string, expireDate time.Time, yearlyCost float64, phone string) string {
	return fmt.Sprintf(`تنبيه عاجل! ⚠️
العميل: %s
الدومين: %s
سينتهي خلال أسبوع: %s
المبلغ: %s ₪
الهاتف: %s`, username, domainURL, FormatExpireDate(expireDate), formatCost(yearlyCost), phone)
}

// PaymentReceived confirms a recorded payment to the customer.
func PaymentReceived(username string, yearlyCost float64, newExpireDate time.Time) string {
	return fmt.Sprintf(`تم استلام الدفع بنجاح! ✅
عزيزي %s،
تم تسجيل دفعتك في النظام.
المبلغ: %s ₪
الاشتراك الجديد ينتهي: %s
شكراً لك! 🙏`, username, formatCost(yearlyCost), FormatExpireDate(newExpireDate))
}

// SubscriptionCancelled informs the customer their subscription was cancelled.
func SubscriptionCancelled(username, domainURL string) string {
	return fmt.Sprintf(`إلغاء الاشتراك 🔴
عزيزي %s،
تم إلغاء اشتراكك في %s.
إذا كان هذا خطأ، يرجى التواصل معنا فوراً.
شكراً لاستخدامك خدماتنا.`, username, domainURL)
}

// NotificationOneMonthTitle is the admin-inbox title for a one-month reminder.
const NotificationOneMonthTitle = "اشتراك سينتهي خلال شهر"

// NotificationOneWeekTitle is the admin-inbox title for a one-week reminder.
const NotificationOneWeekTitle = "اشتراك سينتهي خلال أسبوع!"

// NotificationExpiringBody is the admin-inbox body for either reminder kind.
func NotificationExpiringBody(username, domainURL string, expireDate time.Time, phone string) string {
	return fmt.Sprintf("اشتراك %s في %s سينتهي في %s. الهاتف: %s",
		username, domainURL, FormatExpireDate(expireDate), phone)
}

// NotificationPaymentTitle is the admin-inbox title for a recorded payment.
const NotificationPaymentTitle = "دفعة جديدة"

// NotificationPaymentBody is the admin-inbox body for a recorded payment.
func NotificationPaymentBody(username, domainURL string, yearlyCost float64) string {
	return fmt.Sprintf("تم تسجيل دفعة من %s لاشتراك %s بمبلغ %s ₪",
		username, domainURL, formatCost(yearlyCost))
}

// NotificationCancelledTitle is the admin-inbox title for a cancellation.
const NotificationCancelledTitle = "إلغاء اشتراك"

// NotificationCancelledBody is the admin-inbox body for a cancellation.
func NotificationCancelledBody(username, domainURL, reason string) string {
	return fmt.Sprintf("تم إلغاء اشتراك %s في %s. السبب: %s",
		username, domainURL, reason)
}
