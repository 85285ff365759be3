package analytics

import (
	"testing"

	"tabletab/internal/models"

	"github.com/stretchr/testify/assert"
)

func item(name string, full float64, half *float64) *models.MenuItem {
	return &models.MenuItem{Name: name, FullPrice: full, HalfPrice: half}
}

func line(mi *models.MenuItem, size models.PortionSize, qty int) models.OrderLine {
	return models.OrderLine{MenuItem: mi, Size: size, Quantity: qty}
}

func f(v float64) *float64 { return &v }

func TestRevenueEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Revenue(nil))
	assert.Equal(t, 0.0, Revenue([]models.OrderLine{}))
}

func TestRevenueSizeResolution(t *testing.T) {
	pizza := item("Pizza", 200, f(120))

	testCases := []struct {
		name string
		line models.OrderLine
		want float64
	}{
		{"full portion", line(pizza, models.SizeFull, 2), 400},
		{"half portion", line(pizza, models.SizeHalf, 1), 120},
		{"deleted menu item contributes zero", line(nil, models.SizeFull, 3), 0},
		{"half size without half price contributes zero", line(item("Bread", 50, nil), models.SizeHalf, 2), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Revenue([]models.OrderLine{tc.line}))
		})
	}
}

func TestRevenueSnapshotWinsOverCurrentPrice(t *testing.T) {
	// Menu price was edited after the order; the charged price stands.
	pizza := item("Pizza", 999, nil)
	l := line(pizza, models.SizeFull, 2)
	l.UnitPrice = 200

	assert.Equal(t, 400.0, Revenue([]models.OrderLine{l}))
}

func TestRevenueSnapshotSurvivesItemDeletion(t *testing.T) {
	l := line(nil, models.SizeHalf, 3)
	l.UnitPrice = 120

	assert.Equal(t, 360.0, Revenue([]models.OrderLine{l}))
}

func TestRevenueAdditivity(t *testing.T) {
	pizza := item("Pizza", 200, f(120))
	bread := item("Bread", 50, nil)

	lines := []models.OrderLine{
		line(pizza, models.SizeFull, 2),
		line(pizza, models.SizeHalf, 1),
		line(bread, models.SizeFull, 3),
		line(nil, models.SizeFull, 5),
		line(bread, models.SizeHalf, 2),
	}

	whole := Revenue(lines)
	for cut := 0; cut <= len(lines); cut++ {
		assert.Equal(t, whole, Revenue(lines[:cut])+Revenue(lines[cut:]),
			"partition at %d must preserve the total", cut)
	}
}
