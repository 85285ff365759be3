package analytics

import (
	"testing"

	"tabletab/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCountItemsEmpty(t *testing.T) {
	pop := CountItems(nil, NoOrdersToday)

	assert.Equal(t, NoOrdersToday, pop.TopName)
	assert.Equal(t, 0, pop.TopCount)
	assert.Empty(t, pop.Counts)
}

func TestCountItemsTallies(t *testing.T) {
	pizza := item("Pizza", 200, f(120))
	bread := item("Bread", 50, nil)

	pop := CountItems([]models.OrderLine{
		line(pizza, models.SizeFull, 2),
		line(bread, models.SizeFull, 3),
		line(pizza, models.SizeHalf, 4),
	}, NoOrdersToday)

	assert.Equal(t, map[string]int{"Pizza": 6, "Bread": 3}, pop.Counts)
	assert.Equal(t, "Pizza", pop.TopName)
	assert.Equal(t, 6, pop.TopCount)
}

func TestCountItemsTieBreakFirstSeen(t *testing.T) {
	// Zebra reaches 5 first, so it keeps the title over the alphabetically
	// earlier Apple at the same count.
	zebra := item("Zebra Roll", 80, nil)
	apple := item("Apple Pie", 60, nil)

	pop := CountItems([]models.OrderLine{
		line(zebra, models.SizeFull, 5),
		line(apple, models.SizeFull, 5),
	}, NoOrdersToday)

	assert.Equal(t, "Zebra Roll", pop.TopName)
	assert.Equal(t, 5, pop.TopCount)

	// Same quantities in the opposite order flip the winner.
	pop = CountItems([]models.OrderLine{
		line(apple, models.SizeFull, 5),
		line(zebra, models.SizeFull, 5),
	}, NoOrdersToday)

	assert.Equal(t, "Apple Pie", pop.TopName)
}

func TestCountItemsSkipsDeletedItems(t *testing.T) {
	bread := item("Bread", 50, nil)

	pop := CountItems([]models.OrderLine{
		line(nil, models.SizeFull, 10),
		line(bread, models.SizeFull, 1),
	}, NoOrdersToday)

	assert.Equal(t, "Bread", pop.TopName)
	assert.Equal(t, 1, pop.TopCount)
	assert.Len(t, pop.Counts, 1)
}
