package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/application/reminder/dto"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/setting"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"

	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

// ---------------------------------------------------------------------------
// in-memory fakes
// ---------------------------------------------------------------------------

type fakeSub struct {
	id          uint
	name        string
	phone       string
	domainURL   string
	yearlyCost  float64
	expireDate  time.Time
	status      subvo.SubscriptionStatus
	cancelledAt *time.Time
	monthSent   bool
	weekSent    bool
}

func (f *fakeSub) flag(kind subvo.ReminderKind) *bool {
	if kind == subvo.ReminderOneWeek {
		return &f.weekSent
	}
	return &f.monthSent
}

// fakeSubscriptionRepo implements subscription.Repository over a slice,
// honoring the same window/flag/cancellation filters as the real queries.
type fakeSubscriptionRepo struct {
	subs []*fakeSub

	claimErr error
	listErr  error

	// staleList makes ListDueForReminder ignore the sent flags, as a
	// concurrent run racing between select and claim would observe.
	staleList bool
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	return fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	return fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	return fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) FindActiveByDomain(ctx context.Context, domainID uint) (*subscription.Subscription, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeSubscriptionRepo) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	for _, s := range r.subs {
		if s.status == subvo.StatusActive && s.expireDate.Before(before) {
			s.status = subvo.StatusExpired
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) ListDueForReminder(ctx context.Context, window subscription.ReminderWindow) ([]subscription.DueReminder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var due []subscription.DueReminder
	for _, s := range r.subs {
		if s.status != subvo.StatusActive || s.cancelledAt != nil {
			continue
		}
		if *s.flag(window.Kind) && !r.staleList {
			continue
		}
		if !window.Contains(s.expireDate) {
			continue
		}
		due = append(due, subscription.DueReminder{
			SubscriptionID: s.id,
			CustomerID:     s.id,
			CustomerName:   s.name,
			Phone:          s.phone,
			DomainID:       s.id,
			DomainURL:      s.domainURL,
			YearlyCost:     s.yearlyCost,
			ExpireDate:     s.expireDate,
		})
	}
	return due, nil
}

func (r *fakeSubscriptionRepo) ClaimReminder(ctx context.Context, id uint, kind subvo.ReminderKind) (bool, error) {
	if r.claimErr != nil {
		return false, r.claimErr
	}
	for _, s := range r.subs {
		if s.id != id {
			continue
		}
		if *s.flag(kind) {
			return false, nil
		}
		*s.flag(kind) = true
		return true, nil
	}
	return false, nil
}

func (r *fakeSubscriptionRepo) ResetReminderFlags(ctx context.Context, window subscription.ReminderWindow) (int64, error) {
	var count int64
	for _, s := range r.subs {
		if s.status != subvo.StatusActive || s.cancelledAt != nil {
			continue
		}
		if !window.Contains(s.expireDate) {
			continue
		}
		if *s.flag(window.Kind) {
			*s.flag(window.Kind) = false
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	created []*notification.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) List(ctx context.Context, limit, offset int) ([]*notification.Notification, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *fakeNotificationRepo) UnreadCount(ctx context.Context) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, id uint) error { return nil }
func (r *fakeNotificationRepo) MarkAllAsRead(ctx context.Context) error       { return nil }
func (r *fakeNotificationRepo) Delete(ctx context.Context, id uint) error     { return nil }

type fakeSettingRepo struct {
	settings setting.Settings
	err      error
}

func (r *fakeSettingRepo) Get(ctx context.Context) (setting.Settings, error) {
	if r.err != nil {
		return setting.Settings{}, r.err
	}
	return r.settings, nil
}

func (r *fakeSettingRepo) Update(ctx context.Context, s setting.Settings) error { return nil }

type sentSMS struct {
	phone   string
	message string
}

type fakeGateway struct {
	sent    []sentSMS
	failFor map[string]string // phone -> error message
}

func (g *fakeGateway) Send(ctx context.Context, phone, message string) (*sms.SendResult, error) {
	g.sent = append(g.sent, sentSMS{phone: phone, message: message})
	if msg, ok := g.failFor[phone]; ok {
		return &sms.SendResult{Success: false, ErrMessage: msg}, nil
	}
	return &sms.SendResult{Success: true, RawResponse: "OK"}, nil
}

type fakeSMSLogRepo struct {
	logs []*sms.Log
}

func (r *fakeSMSLogRepo) Create(ctx context.Context, l *sms.Log) error {
	r.logs = append(r.logs, l)
	return nil
}

func (r *fakeSMSLogRepo) List(ctx context.Context, limit, offset int) ([]*sms.Log, int64, error) {
	return r.logs, int64(len(r.logs)), nil
}

// ---------------------------------------------------------------------------
// fixtures
// ---------------------------------------------------------------------------

const adminPhone = "0525143581"

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func bizDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, biztime.Location()).UTC()
}

// runAt is the fixed reminder-run moment: one calendar month ahead is
// 2025-01-10 and one week ahead is 2024-12-17.
func runAt() time.Time {
	return time.Date(2024, 12, 10, 9, 0, 0, 0, biztime.Location()).UTC()
}

type fixture struct {
	subRepo    *fakeSubscriptionRepo
	notifRepo  *fakeNotificationRepo
	settings   *fakeSettingRepo
	gateway    *fakeGateway
	smsLogRepo *fakeSMSLogRepo
	uc         *RunRemindersUseCase
}

func newFixture(subs ...*fakeSub) *fixture {
	f := &fixture{
		subRepo:   &fakeSubscriptionRepo{subs: subs},
		notifRepo: &fakeNotificationRepo{},
		settings: &fakeSettingRepo{settings: setting.Settings{
			AdminPhone:          adminPhone,
			AutoMessagesEnabled: true,
		}},
		gateway:    &fakeGateway{failFor: map[string]string{}},
		smsLogRepo: &fakeSMSLogRepo{},
	}
	f.uc = NewRunRemindersUseCase(
		f.subRepo, f.notifRepo, f.settings, f.gateway, f.smsLogRepo,
		runAt, testLogger(),
	)
	return f
}

func monthDueSub() *fakeSub {
	return &fakeSub{
		id:         1,
		name:       "سامر",
		phone:      "0521111111",
		domainURL:  "example.com",
		yearlyCost: 1200,
		expireDate: bizDay(2025, 1, 10),
		status:     subvo.StatusActive,
	}
}

func weekDueSub() *fakeSub {
	return &fakeSub{
		id:         2,
		name:       "ليلى",
		phone:      "0522222222",
		domainURL:  "second.com",
		yearlyCost: 800,
		expireDate: bizDay(2024, 12, 17),
		status:     subvo.StatusActive,
	}
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestRunReminders_AutoMessagesDisabled(t *testing.T) {
	month := monthDueSub()
	f := newFixture(month, weekDueSub())
	f.settings.settings.AutoMessagesEnabled = false

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Auto messages disabled", result.Message)
	assert.Equal(t, 0, result.OneMonthReminders)
	assert.Equal(t, 0, result.OneWeekReminders)
	assert.Empty(t, f.gateway.sent, "no SMS attempts when disabled")
	assert.False(t, month.monthSent, "no flag mutations when disabled")
}

func TestRunReminders_DispatchesBothWindows(t *testing.T) {
	month := monthDueSub()
	week := weekDueSub()
	f := newFixture(month, week)

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.OneMonthReminders)
	assert.Equal(t, 1, result.OneWeekReminders)
	require.Len(t, result.OneMonthDetails, 1)
	assert.Equal(t, "سامر", result.OneMonthDetails[0].Customer)
	assert.Equal(t, "2025-01-10", result.OneMonthDetails[0].ExpireDate)
	assert.True(t, result.OneMonthDetails[0].UserSMSSent)
	assert.True(t, result.OneMonthDetails[0].AdminSMSSent)

	// one customer + one admin SMS per subscription
	assert.Len(t, f.gateway.sent, 4)
	assert.Equal(t, "0521111111", f.gateway.sent[0].phone)
	assert.Equal(t, adminPhone, f.gateway.sent[1].phone)

	// flags committed, notifications and audit log written
	assert.True(t, month.monthSent)
	assert.True(t, week.weekSent)
	assert.False(t, month.weekSent, "month sub is outside the week window")
	assert.Len(t, f.notifRepo.created, 2)
	assert.Len(t, f.smsLogRepo.logs, 4)
}

func TestRunReminders_Idempotence(t *testing.T) {
	month := monthDueSub()
	week := weekDueSub()
	f := newFixture(month, week)

	first, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.OneMonthReminders)
	assert.Equal(t, 1, first.OneWeekReminders)

	second, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.OneMonthReminders)
	assert.Equal(t, 0, second.OneWeekReminders)
	assert.Len(t, f.gateway.sent, 4, "no additional SMS on the second run")
}

func TestRunReminders_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		expire   time.Time
		selected bool
	}{
		{"on the target day", bizDay(2025, 1, 10), true},
		{"tolerance day after", bizDay(2025, 1, 11), true},
		{"day before target", bizDay(2025, 1, 9), false},
		{"two days after target", bizDay(2025, 1, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := monthDueSub()
			sub.expireDate = tt.expire
			f := newFixture(sub)

			result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
			require.NoError(t, err)

			if tt.selected {
				assert.Equal(t, 1, result.OneMonthReminders)
			} else {
				assert.Equal(t, 0, result.OneMonthReminders)
			}
		})
	}
}

func TestRunReminders_CancelledExcluded(t *testing.T) {
	cancelled := monthDueSub()
	cancelledAt := bizDay(2024, 11, 1)
	cancelled.status = subvo.StatusCancelled
	cancelled.cancelledAt = &cancelledAt

	f := newFixture(cancelled)

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.OneMonthReminders)
	assert.Empty(t, f.gateway.sent)
}

func TestRunReminders_ResetSemantics(t *testing.T) {
	inWindow := monthDueSub()
	inWindow.monthSent = true

	outside := monthDueSub()
	outside.id = 9
	outside.expireDate = bizDay(2025, 3, 1)
	outside.monthSent = true

	f := newFixture(inWindow, outside)

	// without reset the flagged subscription stays skipped
	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.OneMonthReminders)

	// reset clears only the in-window flag and re-dispatches
	result, err = f.uc.Execute(context.Background(), dto.RunRemindersRequest{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.OneMonthReminders)
	assert.True(t, inWindow.monthSent, "flag set again after re-dispatch")
	assert.True(t, outside.monthSent, "out-of-window flag untouched by reset")
}

func TestRunReminders_PartialFailureIsolation(t *testing.T) {
	failing := monthDueSub()
	healthy := monthDueSub()
	healthy.id = 5
	healthy.name = "نور"
	healthy.phone = "0523333333"
	healthy.domainURL = "third.com"

	f := newFixture(failing, healthy)
	f.gateway.failFor[failing.phone] = "destination unreachable"

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.True(t, result.Success, "item failures do not fail the run")
	require.Equal(t, 2, result.OneMonthReminders)

	byPhone := map[string]dto.ReminderDetail{}
	for _, d := range result.OneMonthDetails {
		byPhone[d.Phone] = d
	}

	assert.False(t, byPhone[failing.phone].UserSMSSent)
	assert.Equal(t, "destination unreachable", byPhone[failing.phone].UserSMSError)
	assert.True(t, byPhone[healthy.phone].UserSMSSent)

	// failure of A does not block B's flag, notification or audit rows
	assert.True(t, failing.monthSent, "flag set even when the SMS failed")
	assert.True(t, healthy.monthSent)
	assert.Len(t, f.notifRepo.created, 2)

	failedLogs := 0
	for _, l := range f.smsLogRepo.logs {
		if l.Status() == sms.StatusFailed {
			failedLogs++
		}
	}
	assert.Equal(t, 1, failedLogs)
}

func TestRunReminders_ClaimRaceSkipsDispatch(t *testing.T) {
	sub := monthDueSub()
	sub.monthSent = true
	f := newFixture(sub)
	f.subRepo.staleList = true

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.OneMonthReminders, "already-claimed subscription is skipped")
	assert.Empty(t, f.gateway.sent)
	assert.Empty(t, f.notifRepo.created)
}

func TestRunReminders_SettingsFailureFallsBackToDefaults(t *testing.T) {
	sub := monthDueSub()
	f := newFixture(sub)
	f.settings.err = fmt.Errorf("settings row unavailable")

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.OneMonthReminders)
	require.Len(t, f.gateway.sent, 2)
	assert.Equal(t, setting.Defaults().AdminPhone, f.gateway.sent[1].phone,
		"admin copy goes to the default phone")
}

func TestRunReminders_StatusEvaluatorRunsFirst(t *testing.T) {
	overdue := monthDueSub()
	overdue.id = 8
	overdue.expireDate = bizDay(2024, 12, 1) // already past on run day

	f := newFixture(overdue)

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.Equal(t, subvo.StatusExpired, overdue.status, "overdue subscription transitioned")
	assert.Equal(t, 0, result.OneMonthReminders)
	assert.Equal(t, 0, result.OneWeekReminders)
}

func TestRunReminders_SelectErrorEndsPassOnly(t *testing.T) {
	f := newFixture(monthDueSub())
	f.subRepo.listErr = fmt.Errorf("connection reset")

	result, err := f.uc.Execute(context.Background(), dto.RunRemindersRequest{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.OneMonthReminders)
	assert.Equal(t, 0, result.OneWeekReminders)
}
