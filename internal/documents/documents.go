package documents

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"tabletab/internal/analytics"
	"tabletab/internal/models"
)

// billLine is one row of the bill table.
type billLine struct {
	Name     string
	Size     models.PortionSize
	Quantity int
	Price    string
	Total    string
}

type billView struct {
	RestaurantName string
	Address        string
	GSTNumber      string
	OrderID        uint
	TableNumber    int
	PlacedAt       string
	Lines          []billLine
	Subtotal       string
	GSTRate        float64
	GSTAmount      string
	GrandTotal     string
}

type kotLine struct {
	Name     string
	Size     models.PortionSize
	Quantity int
}

type kotView struct {
	OrderID     uint
	TableNumber int
	PlacedAt    string
	Lines       []kotLine
}

// formatINR renders an amount the way bills print it.
func formatINR(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// lineName resolves a printable item name; deleted menu items fall back to a
// placeholder rather than dropping the row from the bill.
func lineName(line models.OrderLine) string {
	if line.MenuItem != nil {
		return line.MenuItem.Name
	}
	return "(removed item)"
}

// RenderBill renders the customer bill for an order as printable HTML.
// Amounts use the prices charged at order time; GST is applied on the
// subtotal at the restaurant's configured rate.
func RenderBill(order *models.Order, settings *models.RestaurantSettings) (string, error) {
	view := billView{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		PlacedAt:    order.CreatedAt.Format(time.RFC1123),
	}
	if settings != nil {
		view.RestaurantName = settings.RestaurantName
		view.Address = settings.Address
		view.GSTNumber = settings.GSTNumber
		view.GSTRate = settings.GSTRate
	}

	var subtotal float64
	for _, line := range order.Items {
		price := analytics.UnitPrice(line)
		total := price * float64(line.Quantity)
		subtotal += total
		view.Lines = append(view.Lines, billLine{
			Name:     lineName(line),
			Size:     line.Size,
			Quantity: line.Quantity,
			Price:    formatINR(price),
			Total:    formatINR(total),
		})
	}

	gstAmount := subtotal * view.GSTRate / 100
	view.Subtotal = formatINR(subtotal)
	view.GSTAmount = formatINR(gstAmount)
	view.GrandTotal = formatINR(subtotal + gstAmount)

	return render(billTemplate, view)
}

// RenderKOT renders the kitchen order ticket: items and quantities only, no
// prices.
func RenderKOT(order *models.Order) (string, error) {
	view := kotView{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		PlacedAt:    order.CreatedAt.Format("3:04PM"),
	}
	for _, line := range order.Items {
		view.Lines = append(view.Lines, kotLine{
			Name:     lineName(line),
			Size:     line.Size,
			Quantity: line.Quantity,
		})
	}
	return render(kotTemplate, view)
}

func render(tmpl *template.Template, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}
