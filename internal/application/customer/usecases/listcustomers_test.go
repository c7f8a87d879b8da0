package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/domain/customer"
	"hostdesk/internal/domain/subscription"
)

type stubDomainRepo struct {
	domains map[uint][]*customer.Domain
}

func (r *stubDomainRepo) Create(ctx context.Context, d *customer.Domain) error { return nil }
func (r *stubDomainRepo) GetByID(ctx context.Context, id uint) (*customer.Domain, error) {
	return nil, nil
}
func (r *stubDomainRepo) Update(ctx context.Context, d *customer.Domain) error { return nil }
func (r *stubDomainRepo) Delete(ctx context.Context, id uint) error            { return nil }
func (r *stubDomainRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*customer.Domain, error) {
	return r.domains[customerID], nil
}

type stubSubscriptionSource struct {
	subs map[uint][]*subscription.Subscription
}

func (r *stubSubscriptionSource) ListByCustomer(ctx context.Context, customerID uint) ([]*subscription.Subscription, error) {
	return r.subs[customerID], nil
}

func newSubscriptionAt(t *testing.T, customerID, domainID, id uint, begin time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(customerID, domainID, 1200, nil, false, begin)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(id))
	return sub
}

func TestListCustomers(t *testing.T) {
	cust, err := customer.NewCustomer("سامر", customer.CompanyAjad, "0521111111")
	require.NoError(t, err)
	require.NoError(t, cust.SetID(1))

	dom, err := customer.NewDomain(1, "example.com")
	require.NoError(t, err)

	// ListByCustomer is ordered newest first; the head is the latest.
	newer := newSubscriptionAt(t, 1, 10, 2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	older := newSubscriptionAt(t, 1, 10, 1, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	uc := NewListCustomersUseCase(
		&stubCustomerRepo{customers: map[uint]*customer.Customer{1: cust}, listed: []*customer.Customer{cust}},
		&stubDomainRepo{domains: map[uint][]*customer.Domain{1: {dom}}},
		&stubSubscriptionSource{subs: map[uint][]*subscription.Subscription{1: {newer, older}}},
		statsLogger(),
	)

	details, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 1)

	detail := details[0]
	assert.Equal(t, "سامر", detail.Customer.Username())
	require.Len(t, detail.Domains, 1)
	assert.Equal(t, "example.com", detail.Domains[0].URL())
	require.NotNil(t, detail.LatestSubscription)
	assert.Equal(t, uint(2), detail.LatestSubscription.ID())
}

func TestGetCustomer_NoSubscriptions(t *testing.T) {
	cust, err := customer.NewCustomer("سامر", customer.CompanyAjad, "0521111111")
	require.NoError(t, err)
	require.NoError(t, cust.SetID(1))

	uc := NewGetCustomerUseCase(
		&stubCustomerRepo{customers: map[uint]*customer.Customer{1: cust}},
		&stubDomainRepo{},
		&stubSubscriptionSource{},
		statsLogger(),
	)

	detail, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, detail.LatestSubscription)
	assert.Empty(t, detail.Domains)
}

func TestGetCustomer_NotFound(t *testing.T) {
	uc := NewGetCustomerUseCase(
		&stubCustomerRepo{},
		&stubDomainRepo{},
		&stubSubscriptionSource{},
		statsLogger(),
	)

	_, err := uc.Execute(context.Background(), 404)
	assert.ErrorIs(t, err, customer.ErrNotFound)
}
