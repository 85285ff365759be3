package analytics

import "tabletab/internal/models"

// UnitPrice resolves the price charged for one unit of an order line.
// The snapshot taken at order time wins; lines written before snapshots
// existed fall back to the referenced menu item's current price. A line
// whose menu item has been deleted, or a half-size line on an item with no
// half price, resolves to zero rather than an error - that revenue is
// unrecoverable.
func UnitPrice(line models.OrderLine) float64 {
	if line.UnitPrice > 0 {
		return line.UnitPrice
	}
	if line.MenuItem == nil {
		return 0
	}
	price, ok := line.MenuItem.PriceFor(line.Size)
	if !ok {
		return 0
	}
	return price
}

// Revenue sums unit price times quantity over a set of order lines.
// Pure: no side effects, deterministic for a given input.
func Revenue(lines []models.OrderLine) float64 {
	var total float64
	for _, line := range lines {
		total += UnitPrice(line) * float64(line.Quantity)
	}
	return total
}

// Lines flattens the order lines of a window's orders, preserving fetch
// order. Downstream tie-breaks depend on this ordering.
func Lines(orders []models.Order) []models.OrderLine {
	var lines []models.OrderLine
	for _, order := range orders {
		lines = append(lines, order.Items...)
	}
	return lines
}
