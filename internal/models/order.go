package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// Order represents a table order placed by a customer, either directly from
// the menu page or through the chat assistant.
type Order struct {
	gorm.Model
	RestaurantID uint        `json:"restaurant_id"`
	TableNumber  int         `json:"table_number"`
	Status       string      `json:"status"`
	WaiterAction string      `json:"waiter_action,omitempty"`
	Items        []OrderLine `json:"order_items" gorm:"foreignkey:OrderID"`
}

// OrderLine is a single item within an order. UnitPrice is the price charged
// at the time the order was placed; MenuItem is the current menu row and may
// be nil when the item has since been deleted.
type OrderLine struct {
	gorm.Model
	OrderID    uint        `json:"order_id"`
	MenuItemID uint        `json:"menu_item_id"`
	Quantity   int         `json:"quantity"`
	Size       PortionSize `json:"size"`
	UnitPrice  float64     `json:"unit_price"`
	MenuItem   *MenuItem   `json:"menu_item,omitempty" gorm:"foreignkey:MenuItemID"`
}

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusTransitions lists the permitted order status changes.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusCompleted, OrderStatusCancelled},
}

// ValidateStatusTransition reports whether an order may move between two states.
func ValidateStatusTransition(from, to OrderStatus) error {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("cannot change order status from %q to %q", from, to)
}

// ValidateOrder validates a new order before it is saved
func ValidateOrder(order *Order) error {
	if order.TableNumber <= 0 {
		return fmt.Errorf("order table number must be a positive integer")
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for _, line := range order.Items {
		if line.Quantity <= 0 {
			return fmt.Errorf("order line quantity must be a positive integer")
		}
		if line.Size != SizeHalf && line.Size != SizeFull {
			return fmt.Errorf("order line size must be %q or %q", SizeHalf, SizeFull)
		}
	}
	return nil
}
