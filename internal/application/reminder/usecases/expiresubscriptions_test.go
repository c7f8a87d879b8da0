package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subvo "hostdesk/internal/domain/subscription/valueobjects"
)

func TestExpireSubscriptions(t *testing.T) {
	overdue := monthDueSub()
	overdue.expireDate = bizDay(2024, 12, 1)

	expiringToday := weekDueSub()
	expiringToday.expireDate = bizDay(2024, 12, 10)

	future := monthDueSub()
	future.id = 3
	future.expireDate = bizDay(2025, 1, 10)

	cancelled := monthDueSub()
	cancelled.id = 4
	cancelled.expireDate = bizDay(2024, 12, 1)
	cancelled.status = subvo.StatusCancelled

	repo := &fakeSubscriptionRepo{subs: []*fakeSub{overdue, expiringToday, future, cancelled}}
	uc := NewExpireSubscriptionsUseCase(repo, runAt, testLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), count)
	assert.Equal(t, subvo.StatusExpired, overdue.status)
	assert.Equal(t, subvo.StatusActive, expiringToday.status, "active until end of the business day")
	assert.Equal(t, subvo.StatusActive, future.status)
	assert.Equal(t, subvo.StatusCancelled, cancelled.status, "bulk update never touches cancelled rows")
}

func TestExpireSubscriptions_Repeatable(t *testing.T) {
	overdue := monthDueSub()
	overdue.expireDate = bizDay(2024, 12, 1)

	repo := &fakeSubscriptionRepo{subs: []*fakeSub{overdue}}
	uc := NewExpireSubscriptionsUseCase(repo, runAt, testLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "second run matches no rows")
}

func TestExpireSubscriptions_BusinessDayBoundary(t *testing.T) {
	sub := monthDueSub()
	sub.expireDate = bizDay(2024, 12, 9)

	repo := &fakeSubscriptionRepo{subs: []*fakeSub{sub}}

	// late evening in the business timezone, still the same calendar day
	lateRun := func() time.Time {
		return bizDay(2024, 12, 10).Add(23 * time.Hour)
	}
	uc := NewExpireSubscriptionsUseCase(repo, lateRun, testLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, subvo.StatusExpired, sub.status)
}
