package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// MenuItem represents a dish on a restaurant's menu
type MenuItem struct {
	gorm.Model
	RestaurantID uint     `json:"restaurant_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	ImageURL     string   `json:"image_url"`
	FullPrice    float64  `json:"full_price"`
	HalfPrice    *float64 `json:"half_price"`
	IsVegetarian bool     `json:"is_vegetarian"`
	OutOfStock   bool     `json:"out_of_stock"`
}

// PortionSize represents the portion selector on an order line
type PortionSize string

const (
	SizeHalf PortionSize = "half"
	SizeFull PortionSize = "full"
)

// ValidateMenuItem validates a menu item before it is saved
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.FullPrice <= 0 {
		return fmt.Errorf("menu item full price must be greater than 0")
	}
	if item.HalfPrice != nil && *item.HalfPrice <= 0 {
		return fmt.Errorf("menu item half price must be greater than 0 when set")
	}
	return nil
}

// PriceFor returns the price charged for a portion size. The second return
// value is false when the item has no price for that size.
func (mi *MenuItem) PriceFor(size PortionSize) (float64, bool) {
	if size == SizeHalf {
		if mi.HalfPrice == nil {
			return 0, false
		}
		return *mi.HalfPrice, true
	}
	return mi.FullPrice, true
}
