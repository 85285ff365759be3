package analytics

import (
	"time"

	"tabletab/internal/models"
)

// HourlyDistribution buckets orders by their creation hour, labelled in
// 12-hour form ("9AM", "2PM") in the given location. Buckets appear in
// first-occurrence order while scanning orders as fetched, not sorted by
// clock hour; the chart renders them in that order.
func HourlyDistribution(orders []models.Order, loc *time.Location) []models.HourlyBucket {
	buckets := make([]models.HourlyBucket, 0)
	index := make(map[string]int)

	for _, order := range orders {
		label := order.CreatedAt.In(loc).Format("3PM")
		if i, ok := index[label]; ok {
			buckets[i].Orders++
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, models.HourlyBucket{Hour: label, Orders: 1})
	}

	return buckets
}
