package models

import "github.com/jinzhu/gorm"

// RestaurantSettings holds the billing details shown on bills and used by the
// chat assistant: display name, address and GST registration.
type RestaurantSettings struct {
	gorm.Model
	RestaurantID   uint    `json:"restaurant_id" gorm:"unique_index"`
	RestaurantName string  `json:"restaurant_name"`
	Address        string  `json:"address"`
	GSTNumber      string  `json:"gst_number"`
	GSTRate        float64 `json:"gst_rate"`
}
