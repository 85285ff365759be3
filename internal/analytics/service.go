package analytics

import (
	"context"
	"time"

	"tabletab/internal/models"
)

// OrderSource fetches a restaurant's orders for a time window. Rows come
// back with order lines and their menu items preloaded and cancelled orders
// already excluded. A nil createdBefore leaves the window open-ended; a
// non-nil one is an exclusive upper bound.
type OrderSource interface {
	FetchOrders(ctx context.Context, restaurantID uint, createdAfter time.Time, createdBefore *time.Time) ([]models.Order, error)
}

// Service assembles the dashboard aggregate from three windowed reads:
// today, the current month and the previous month. Each call is a full,
// independent recomputation; nothing is cached between calls.
type Service struct {
	source OrderSource
	loc    *time.Location
	now    func() time.Time
}

// NewService creates an analytics service. Hour labels and window
// boundaries use loc, the restaurant's local timezone.
func NewService(source OrderSource, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		source: source,
		loc:    loc,
		now:    time.Now,
	}
}

// GetAnalytics fetches the three windows and merges the aggregate. The three
// reads are not atomic relative to one another; an order written between them
// may appear in one figure and not another, which is acceptable for a
// dashboard recomputed every refresh cycle. Any fetch error propagates
// unchanged - no retry, no partial result.
func (s *Service) GetAnalytics(ctx context.Context, restaurantID uint) (*models.OrderAnalytics, error) {
	now := s.now().In(s.loc)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	prevMonthStart := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, s.loc)

	today, err := s.source.FetchOrders(ctx, restaurantID, todayStart, nil)
	if err != nil {
		return nil, err
	}
	month, err := s.source.FetchOrders(ctx, restaurantID, monthStart, nil)
	if err != nil {
		return nil, err
	}
	// The upper bound is exclusive: an order created exactly at the month
	// boundary counts in the current month only.
	prevMonth, err := s.source.FetchOrders(ctx, restaurantID, prevMonthStart, &monthStart)
	if err != nil {
		return nil, err
	}

	todayLines := Lines(today)
	monthLines := Lines(month)

	todayTop := CountItems(todayLines, NoOrdersToday)
	monthTop := CountItems(monthLines, NoOrdersThisMonth)

	return &models.OrderAnalytics{
		TodayRevenue:               Revenue(todayLines),
		MonthlyRevenue:             Revenue(monthLines),
		PreviousMonthRevenue:       Revenue(Lines(prevMonth)),
		TodayOrders:                len(today),
		MonthlyOrders:              len(month),
		TodayTransactions:          len(today),
		MonthlyTransactions:        len(month),
		TopSellingItem:             todayTop.TopName,
		TopSellingItemCount:        todayTop.TopCount,
		MonthlyTopSellingItem:      monthTop.TopName,
		MonthlyTopSellingItemCount: monthTop.TopCount,
		HourlyOrders:               HourlyDistribution(today, s.loc),
	}, nil
}
