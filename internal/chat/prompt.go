package chat

import (
	"fmt"
	"strings"

	"tabletab/internal/models"
)

// categories groups menu items by category, preserving the order categories
// first appear. Items without a category fall under "Other".
func categories(items []models.MenuItem) ([]string, map[string][]models.MenuItem) {
	var names []string
	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Other"
		}
		if _, ok := grouped[category]; !ok {
			names = append(names, category)
		}
		grouped[category] = append(grouped[category], item)
	}
	return names, grouped
}

// formatMenu renders the per-category menu text shown when a customer asks
// for the menu.
func formatMenu(items []models.MenuItem) string {
	names, grouped := categories(items)

	var b strings.Builder
	b.WriteString("Here's our menu:")
	for _, category := range names {
		fmt.Fprintf(&b, "\n\n%s:", category)
		for _, item := range grouped[category] {
			var prices []string
			if item.HalfPrice != nil {
				prices = append(prices, fmt.Sprintf("Half: ₹%.0f", *item.HalfPrice))
			}
			prices = append(prices, fmt.Sprintf("Full: ₹%.0f", item.FullPrice))

			marker := " 🔴"
			if item.IsVegetarian {
				marker = " 🟢"
			}
			status := ""
			if item.OutOfStock {
				status = " (Out of Stock)"
			}
			fmt.Fprintf(&b, "\n   • %s%s - %s%s", item.Name, marker, strings.Join(prices, " | "), status)
		}
	}
	b.WriteString("\n\n🟢 = Vegetarian | 🔴 = Non-vegetarian\n\n")
	b.WriteString("What would you like to order? I can help you with our specialties or popular dishes if you'd like recommendations.")
	return b.String()
}

// systemPrompt builds the model's instructions for one turn.
func systemPrompt(req Request) string {
	names, _ := categories(req.MenuItems)

	table := req.TableNumber
	if table == "" {
		table = "Not provided"
	}

	var cart []string
	for _, item := range req.CartItems {
		cart = append(cart, fmt.Sprintf("%dx %s (%s)", item.Quantity, item.Name, item.Size))
	}
	cartText := "empty"
	if len(cart) > 0 {
		cartText = strings.Join(cart, ", ")
	}

	return fmt.Sprintf(`You are a professional restaurant AI assistant for %s. Your role is to:

1. Menu & Ordering:
   - Keep track of ordered items and quantities
   - Confirm each order item with size (half/full) and quantity
   - Calculate and show total bill when requested
   - Highlight vegetarian options when recommending dishes

2. Key Behaviors:
   - Be courteous and professional
   - Ask for table number if not provided
   - Make relevant menu recommendations
   - Keep responses concise and clear

Current Context:
- Restaurant: %s
- Table: %s
- Categories: %s
- Current Order: %s`,
		req.RestaurantName, req.RestaurantName, table, strings.Join(names, ", "), cartText)
}
