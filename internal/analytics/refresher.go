package analytics

import (
	"context"
	"log"
	"time"

	"tabletab/internal/models"
)

// Feed receives refreshed aggregates and says which restaurants currently
// have someone watching. Satisfied by the live-feed hub.
type Feed interface {
	WatchedRestaurants() []uint
	PushAnalytics(restaurantID uint, a *models.OrderAnalytics)
}

// Observer times refresh computations. Satisfied by the metrics collector.
type Observer interface {
	ObserveAnalyticsRefresh(d time.Duration)
}

// Refresher recomputes analytics on a fixed cadence for every restaurant
// with an open dashboard and pushes the result to the feed. A failed
// computation is logged and the previous value stays on screen. Refreshes
// run one at a time, so a slow cycle delays the next rather than racing it.
type Refresher struct {
	service  *Service
	feed     Feed
	observer Observer
	interval time.Duration
}

// NewRefresher creates a refresher. observer may be nil.
func NewRefresher(service *Service, feed Feed, observer Observer, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{
		service:  service,
		feed:     feed,
		observer: observer,
		interval: interval,
	}
}

// Run loops until ctx is cancelled. Call in its own goroutine.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	for _, restaurantID := range r.feed.WatchedRestaurants() {
		start := time.Now()
		result, err := r.service.GetAnalytics(ctx, restaurantID)
		if err != nil {
			log.Printf("analytics refresh failed for restaurant %d: %v", restaurantID, err)
			continue
		}
		if r.observer != nil {
			r.observer.ObserveAnalyticsRefresh(time.Since(start))
		}
		r.feed.PushAnalytics(restaurantID, result)
	}
}
