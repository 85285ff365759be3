package analytics

import "tabletab/internal/models"

// Sentinel names returned when a window has no orders.
const (
	NoOrdersToday     = "No orders today"
	NoOrdersThisMonth = "No orders this month"
)

// Popularity is the per-window item sales tally.
type Popularity struct {
	Counts   map[string]int
	TopName  string
	TopCount int
}

// CountItems tallies quantity sold per menu item name and picks the top
// seller. Ties break first-seen: the comparison is strictly greater-than, so
// the first line that reaches the winning total keeps the title regardless of
// name ordering. Lines whose menu item no longer exists carry no name and are
// skipped. An empty window yields the sentinel with count 0.
func CountItems(lines []models.OrderLine, sentinel string) Popularity {
	pop := Popularity{
		Counts:  make(map[string]int),
		TopName: sentinel,
	}

	for _, line := range lines {
		if line.MenuItem == nil {
			continue
		}
		name := line.MenuItem.Name
		pop.Counts[name] += line.Quantity
		if pop.Counts[name] > pop.TopCount {
			pop.TopCount = pop.Counts[name]
			pop.TopName = name
		}
	}

	return pop
}
