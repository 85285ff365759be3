package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"tabletab/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowCall struct {
	after  time.Time
	before *time.Time
}

// fakeSource serves canned order sets keyed by the window's lower bound and
// records every call it sees.
type fakeSource struct {
	byAfter map[time.Time][]models.Order
	calls   []windowCall
	err     error
}

func (s *fakeSource) FetchOrders(_ context.Context, _ uint, after time.Time, before *time.Time) ([]models.Order, error) {
	s.calls = append(s.calls, windowCall{after: after, before: before})
	if s.err != nil {
		return nil, s.err
	}
	return s.byAfter[after], nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetAnalyticsWindows(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 13, 45, 0, 0, loc)

	source := &fakeSource{byAfter: map[time.Time][]models.Order{}}
	svc := NewService(source, loc)
	svc.now = fixedClock(now)

	_, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, source.calls, 3)

	todayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	prevMonthStart := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)

	assert.Equal(t, todayStart, source.calls[0].after)
	assert.Nil(t, source.calls[0].before)

	assert.Equal(t, monthStart, source.calls[1].after)
	assert.Nil(t, source.calls[1].before)

	// Previous month runs up to, and excludes, the current month boundary.
	assert.Equal(t, prevMonthStart, source.calls[2].after)
	require.NotNil(t, source.calls[2].before)
	assert.Equal(t, monthStart, *source.calls[2].before)
}

func TestGetAnalyticsJanuaryWindow(t *testing.T) {
	loc := time.UTC
	source := &fakeSource{byAfter: map[time.Time][]models.Order{}}
	svc := NewService(source, loc)
	svc.now = fixedClock(time.Date(2024, 1, 5, 10, 0, 0, 0, loc))

	_, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)

	// Previous month rolls back into December of the prior year.
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, loc), source.calls[2].after)
}

func TestGetAnalyticsAggregate(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 13, 45, 0, 0, loc)
	todayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	prevMonthStart := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)

	pizza := item("Pizza", 200, f(120))
	bread := item("Bread", 50, nil)

	todayOrder := orderAt(todayStart.Add(9 * time.Hour))
	todayOrder.Items = []models.OrderLine{
		line(pizza, models.SizeFull, 2),
		line(bread, models.SizeFull, 3),
	}

	monthOrder := orderAt(monthStart.Add(48 * time.Hour))
	monthOrder.Items = []models.OrderLine{line(pizza, models.SizeHalf, 1)}

	prevOrder := orderAt(prevMonthStart.Add(24 * time.Hour))
	prevOrder.Items = []models.OrderLine{line(bread, models.SizeFull, 4)}

	source := &fakeSource{byAfter: map[time.Time][]models.Order{
		todayStart:     {todayOrder},
		monthStart:     {todayOrder, monthOrder},
		prevMonthStart: {prevOrder},
	}}
	svc := NewService(source, loc)
	svc.now = fixedClock(now)

	got, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 550.0, got.TodayRevenue) // 2*200 + 3*50
	assert.Equal(t, 670.0, got.MonthlyRevenue)
	assert.Equal(t, 200.0, got.PreviousMonthRevenue)
	assert.Equal(t, 1, got.TodayOrders)
	assert.Equal(t, 2, got.MonthlyOrders)
	assert.Equal(t, got.TodayOrders, got.TodayTransactions)
	assert.Equal(t, got.MonthlyOrders, got.MonthlyTransactions)
	assert.Equal(t, "Bread", got.TopSellingItem)
	assert.Equal(t, 3, got.TopSellingItemCount)
	assert.Equal(t, "Bread", got.MonthlyTopSellingItem)
	assert.Equal(t, 3, got.MonthlyTopSellingItemCount)
	assert.Equal(t, []models.HourlyBucket{{Hour: "9AM", Orders: 1}}, got.HourlyOrders)
}

func TestGetAnalyticsEmptyWindows(t *testing.T) {
	loc := time.UTC
	source := &fakeSource{byAfter: map[time.Time][]models.Order{}}
	svc := NewService(source, loc)
	svc.now = fixedClock(time.Date(2024, 3, 15, 13, 45, 0, 0, loc))

	got, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, got.TodayRevenue)
	assert.Zero(t, got.TodayOrders)
	assert.Equal(t, NoOrdersToday, got.TopSellingItem)
	assert.Zero(t, got.TopSellingItemCount)
	assert.Equal(t, NoOrdersThisMonth, got.MonthlyTopSellingItem)
	assert.Empty(t, got.HourlyOrders)
}

func TestGetAnalyticsIdempotentRead(t *testing.T) {
	loc := time.UTC
	todayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	pizza := item("Pizza", 200, f(120))
	order := orderAt(todayStart.Add(11 * time.Hour))
	order.Items = []models.OrderLine{line(pizza, models.SizeFull, 1)}

	source := &fakeSource{byAfter: map[time.Time][]models.Order{todayStart: {order}}}
	svc := NewService(source, loc)
	svc.now = fixedClock(time.Date(2024, 3, 15, 13, 45, 0, 0, loc))

	first, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAnalyticsPropagatesFetchError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	svc := NewService(source, time.UTC)

	got, err := svc.GetAnalytics(context.Background(), 1)

	assert.Nil(t, got)
	assert.EqualError(t, err, "connection refused")
}
