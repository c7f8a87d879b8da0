package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/setting"
	"hostdesk/internal/shared/logger"
)

type stubCustomerRepo struct {
	customers map[uint]*customer.Customer
	listed    []*customer.Customer
	count     int64
}

func (r *stubCustomerRepo) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (r *stubCustomerRepo) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return r.customers[id], nil
}
func (r *stubCustomerRepo) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (r *stubCustomerRepo) Delete(ctx context.Context, id uint) error              { return nil }
func (r *stubCustomerRepo) List(ctx context.Context) ([]*customer.Customer, error) {
	return r.listed, nil
}
func (r *stubCustomerRepo) Count(ctx context.Context) (int64, error) { return r.count, nil }

type stubStats struct {
	active   int64
	expiring int64
	payers   int64
}

func (s *stubStats) CountActive(ctx context.Context) (int64, error) { return s.active, nil }
func (s *stubStats) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return s.expiring, nil
}
func (s *stubStats) CountCustomersWithActive(ctx context.Context) (int64, error) {
	return s.payers, nil
}

type stubSettingRepo struct {
	settings setting.Settings
}

func (r *stubSettingRepo) Get(ctx context.Context) (setting.Settings, error) {
	return r.settings, nil
}
func (r *stubSettingRepo) Update(ctx context.Context, s setting.Settings) error { return nil }

func statsLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDashboardStats(t *testing.T) {
	uc := NewDashboardStatsUseCase(
		&stubCustomerRepo{count: 12},
		&stubStats{active: 9, expiring: 3, payers: 8},
		&stubSettingRepo{settings: setting.Settings{ServerMonthlyCost: 400}},
		nil, statsLogger(),
	)

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.TotalCustomers)
	assert.Equal(t, int64(9), stats.ActiveSubscriptions)
	assert.Equal(t, int64(3), stats.ExpiringThisMonth)
	assert.InDelta(t, 50.0, stats.MonthlyCostPerUser, 0.001)
}

func TestDashboardStats_NoPayingCustomers(t *testing.T) {
	uc := NewDashboardStatsUseCase(
		&stubCustomerRepo{count: 2},
		&stubStats{},
		&stubSettingRepo{settings: setting.Settings{ServerMonthlyCost: 400}},
		nil, statsLogger(),
	)

	stats, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.MonthlyCostPerUser, "no division by zero when nobody is active")
}

func TestUpdateCustomer(t *testing.T) {
	cust, err := customer.NewCustomer("سامر", customer.CompanyAjad, "0521111111")
	require.NoError(t, err)
	require.NoError(t, cust.SetID(1))

	repo := &stubCustomerRepo{customers: map[uint]*customer.Customer{1: cust}}
	uc := NewUpdateCustomerUseCase(repo, statsLogger())

	updated, err := uc.Execute(context.Background(), UpdateCustomerCommand{
		CustomerID: 1,
		Username:   "سامر الجديد",
		Company:    customer.CompanySoft,
		Phone:      "0529999999",
	})
	require.NoError(t, err)

	assert.Equal(t, "سامر الجديد", updated.Username())
	assert.Equal(t, customer.CompanySoft, updated.Company())
	assert.Equal(t, "0529999999", updated.Phone())
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	uc := NewUpdateCustomerUseCase(&stubCustomerRepo{}, statsLogger())

	_, err := uc.Execute(context.Background(), UpdateCustomerCommand{CustomerID: 7})
	assert.ErrorIs(t, err, customer.ErrNotFound)
}
