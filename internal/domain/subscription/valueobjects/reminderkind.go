package valueobjects

import "fmt"

// ReminderKind identifies which of the two expiry reminders is being handled.
// Each kind has its own persisted sent-flag on the subscription.
type ReminderKind string

const (
	ReminderOneMonth ReminderKind = "one_month"
	ReminderOneWeek  ReminderKind = "one_week"
)

func (k ReminderKind) String() string {
	return string(k)
}

func (k ReminderKind) IsValid() bool {
	return k == ReminderOneMonth || k == ReminderOneWeek
}

func ParseReminderKind(s string) (ReminderKind, error) {
	k := ReminderKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid reminder kind: %q", s)
	}
	return k, nil
}
