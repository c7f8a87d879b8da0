package subscription

import (
	"time"

	"hostdesk/internal/shared/biztime"

	vo "hostdesk/internal/domain/subscription/valueobjects"
)

// ReminderWindow is the expire-date range checked by one reminder pass. Both
// bounds are business-day boundaries in UTC: From is the start of the target
// day and To is the end of the following day, giving the one-day tolerance
// around the target offset.
type ReminderWindow struct {
	Kind vo.ReminderKind
	From time.Time
	To   time.Time
}

// Contains reports whether an expire date falls inside the window.
func (w ReminderWindow) Contains(expireDate time.Time) bool {
	return !expireDate.Before(w.From) && !expireDate.After(w.To)
}

// OneMonthWindow computes the window for the one-month reminder: expire dates
// landing on the calendar day exactly one month from now, or the day after.
// Calendar month addition is used on purpose; months differ in length and a
// fixed 30-day offset drifts.
func OneMonthWindow(now time.Time) ReminderWindow {
	target := biztime.AddCalendarMonths(now, 1)
	return ReminderWindow{
		Kind: vo.ReminderOneMonth,
		From: biztime.StartOfDayUTC(target),
		To:   biztime.EndOfDayUTC(biztime.AddCalendarDays(target, 1)),
	}
}

// OneWeekWindow computes the window for the one-week reminder: expire dates
// landing seven calendar days from now, or the day after.
func OneWeekWindow(now time.Time) ReminderWindow {
	target := biztime.AddCalendarDays(now, 7)
	return ReminderWindow{
		Kind: vo.ReminderOneWeek,
		From: biztime.StartOfDayUTC(target),
		To:   biztime.EndOfDayUTC(biztime.AddCalendarDays(target, 1)),
	}
}

// WindowFor returns the window for the given reminder kind.
func WindowFor(kind vo.ReminderKind, now time.Time) ReminderWindow {
	if kind == vo.ReminderOneWeek {
		return OneWeekWindow(now)
	}
	return OneMonthWindow(now)
}
