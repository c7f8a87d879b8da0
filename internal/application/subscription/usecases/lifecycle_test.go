package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/notification"
	"hostdesk/internal/domain/sms"
	"hostdesk/internal/domain/subscription"
	"hostdesk/internal/shared/biztime"
	"hostdesk/internal/shared/logger"

	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

type memSubscriptionRepo struct {
	subs   map[uint]*subscription.Subscription
	nextID uint
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{subs: map[uint]*subscription.Subscription{}, nextID: 1}
}

func (r *memSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	if err := sub.SetID(r.nextID); err != nil {
		return err
	}
	r.subs[r.nextID] = sub
	r.nextID++
	return nil
}

func (r *memSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.subs[id], nil
}

func (r *memSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	if _, ok := r.subs[sub.ID()]; !ok {
		return fmt.Errorf("subscription %d not found", sub.ID())
	}
	r.subs[sub.ID()] = sub
	return nil
}

func (r *memSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	delete(r.subs, id)
	return nil
}

func (r *memSubscriptionRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, s := range r.subs {
		if s.CustomerID() == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSubscriptionRepo) FindActiveByDomain(ctx context.Context, domainID uint) (*subscription.Subscription, error) {
	for _, s := range r.subs {
		if s.DomainID() == domainID && s.Status() == subvo.StatusActive {
			return s, nil
		}
	}
	return nil, nil
}

func (r *memSubscriptionRepo) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (r *memSubscriptionRepo) ListDueForReminder(ctx context.Context, window subscription.ReminderWindow) ([]subscription.DueReminder, error) {
	return nil, nil
}

func (r *memSubscriptionRepo) ClaimReminder(ctx context.Context, id uint, kind subvo.ReminderKind) (bool, error) {
	return false, nil
}

func (r *memSubscriptionRepo) ResetReminderFlags(ctx context.Context, window subscription.ReminderWindow) (int64, error) {
	return 0, nil
}

type memCustomerRepo struct {
	customers map[uint]*customer.Customer
}

func (r *memCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (r *memCustomerRepo) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (r *memCustomerRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (r *memCustomerRepo) List(ctx context.Context) ([]*customer.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Count(ctx context.Context) (int64, error)               { return 0, nil }

type memDomainRepo struct {
	domains map[uint]*customer.Domain
}

func (r *memDomainRepo) Create(ctx context.Context, d *customer.Domain) error { return nil }
func (r *memDomainRepo) GetByID(ctx context.Context, id uint) (*customer.Domain, error) {
	return r.domains[id], nil
}
func (r *memDomainRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*customer.Domain, error) {
	return nil, nil
}
func (r *memDomainRepo) Delete(ctx context.Context, id uint) error { return nil }

type memNotificationRepo struct {
	created []*notification.Notification
}

func (r *memNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *memNotificationRepo) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}
func (r *memNotificationRepo) List(ctx context.Context, limit, offset int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}
func (r *memNotificationRepo) UnreadCount(ctx context.Context) (int64, error) { return 0, nil }
func (r *memNotificationRepo) MarkAsRead(ctx context.Context, id uint) error  { return nil }
func (r *memNotificationRepo) MarkAllAsRead(ctx context.Context) error        { return nil }
func (r *memNotificationRepo) Delete(ctx context.Context, id uint) error      { return nil }

type memGateway struct {
	sent []string // phone entries in send order
	fail bool
}

func (g *memGateway) Send(ctx context.Context, phone, message string) (*sms.SendResult, error) {
	g.sent = append(g.sent, phone)
	if g.fail {
		return &sms.SendResult{Success: false, ErrMessage: "gateway down"}, nil
	}
	return &sms.SendResult{Success: true, RawResponse: "OK"}, nil
}

type memSMSLogRepo struct {
	logs []*sms.Log
}

func (r *memSMSLogRepo) Create(ctx context.Context, l *sms.Log) error {
	r.logs = append(r.logs, l)
	return nil
}
func (r *memSMSLogRepo) List(ctx context.Context, limit, offset int) ([]*sms.Log, int64, error) {
	return r.logs, int64(len(r.logs)), nil
}

type lifecycleFixture struct {
	subRepo    *memSubscriptionRepo
	custRepo   *memCustomerRepo
	domRepo    *memDomainRepo
	notifRepo  *memNotificationRepo
	gateway    *memGateway
	smsLogRepo *memSMSLogRepo
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	cust, err := customer.NewCustomer("سامر", customer.CompanyAjad, "0521111111")
	require.NoError(t, err)
	require.NoError(t, cust.SetID(1))

	dom, err := customer.NewDomain(1, "example.com")
	require.NoError(t, err)
	require.NoError(t, dom.SetID(10))

	return &lifecycleFixture{
		subRepo:    newMemSubscriptionRepo(),
		custRepo:   &memCustomerRepo{customers: map[uint]*customer.Customer{1: cust}},
		domRepo:    &memDomainRepo{domains: map[uint]*customer.Domain{10: dom}},
		notifRepo:  &memNotificationRepo{},
		gateway:    &memGateway{},
		smsLogRepo: &memSMSLogRepo{},
	}
}

func lifecycleLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func beginDate() time.Time {
	return time.Date(2024, 3, 15, 0, 0, 0, 0, biztime.Location()).UTC()
}

func TestRecordPayment_CreatesYearlySubscription(t *testing.T) {
	f := newLifecycleFixture(t)
	uc := NewRecordPaymentUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	sub, err := uc.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1,
		DomainID:   10,
		YearlyCost: 1200,
		BeginDate:  beginDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, subvo.StatusActive, sub.Status())
	assert.Equal(t, beginDate().AddDate(1, 0, 0), sub.ExpireDate())
	assert.False(t, sub.OneMonthReminderSent())
	assert.False(t, sub.OneWeekReminderSent())

	require.Len(t, f.gateway.sent, 1)
	assert.Equal(t, "0521111111", f.gateway.sent[0])
	require.Len(t, f.smsLogRepo.logs, 1)
	assert.Equal(t, sms.StatusSuccess, f.smsLogRepo.logs[0].Status())
	require.Len(t, f.notifRepo.created, 1)
}

func TestRecordPayment_CompletesPriorActive(t *testing.T) {
	f := newLifecycleFixture(t)
	uc := NewRecordPaymentUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	first, err := uc.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1, DomainID: 10, YearlyCost: 1200, BeginDate: beginDate(),
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1, DomainID: 10, YearlyCost: 1400, BeginDate: beginDate().AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, subvo.StatusDone, first.Status(), "prior subscription completed")
	assert.Equal(t, subvo.StatusActive, second.Status())

	active, err := f.subRepo.FindActiveByDomain(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, second.ID(), active.ID(), "one active subscription per domain")
}

func TestRecordPayment_DomainOwnershipEnforced(t *testing.T) {
	f := newLifecycleFixture(t)
	uc := NewRecordPaymentUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	other, err := customer.NewDomain(2, "other.com")
	require.NoError(t, err)
	require.NoError(t, other.SetID(20))
	f.domRepo.domains[20] = other

	_, err = uc.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1, DomainID: 20, YearlyCost: 1200, BeginDate: beginDate(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
	assert.Empty(t, f.gateway.sent)
}

func TestRecordPayment_GatewayFailureDoesNotFailPayment(t *testing.T) {
	f := newLifecycleFixture(t)
	f.gateway.fail = true
	uc := NewRecordPaymentUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	sub, err := uc.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1, DomainID: 10, YearlyCost: 1200, BeginDate: beginDate(),
	})
	require.NoError(t, err, "payment is committed even when the SMS fails")

	assert.Equal(t, subvo.StatusActive, sub.Status())
	require.Len(t, f.smsLogRepo.logs, 1)
	assert.Equal(t, sms.StatusFailed, f.smsLogRepo.logs[0].Status())
}

func TestCancelSubscription(t *testing.T) {
	f := newLifecycleFixture(t)
	record := NewRecordPaymentUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)
	cancel := NewCancelSubscriptionUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	sub, err := record.Execute(context.Background(), RecordPaymentCommand{
		CustomerID: 1, DomainID: 10, YearlyCost: 1200, BeginDate: beginDate(),
	})
	require.NoError(t, err)
	f.gateway.sent = nil
	f.notifRepo.created = nil

	cancelled, err := cancel.Execute(context.Background(), CancelSubscriptionCommand{
		SubscriptionID: sub.ID(),
		Reason:         "انتقل إلى مزود آخر",
	})
	require.NoError(t, err)

	assert.Equal(t, subvo.StatusCancelled, cancelled.Status())
	require.NotNil(t, cancelled.CancelledAt())
	require.NotNil(t, cancelled.CancelReason())
	assert.Equal(t, "انتقل إلى مزود آخر", *cancelled.CancelReason())

	require.Len(t, f.gateway.sent, 1)
	require.Len(t, f.notifRepo.created, 1)
	assert.True(t, strings.Contains(f.smsLogRepo.logs[len(f.smsLogRepo.logs)-1].Message(), "إلغاء"))
}

func TestCancelSubscription_NotFound(t *testing.T) {
	f := newLifecycleFixture(t)
	cancel := NewCancelSubscriptionUseCase(
		f.subRepo, f.custRepo, f.domRepo, f.notifRepo, f.gateway, f.smsLogRepo, lifecycleLogger(),
	)

	_, err := cancel.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 99})
	assert.ErrorIs(t, err, subscription.ErrNotFound)
}
