package models

import "github.com/jinzhu/gorm"

// Restaurant is an owner account. The record ID doubles as the tenant
// identifier carried on menu items, orders and settings.
type Restaurant struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique_index"`
	PasswordHash string `json:"-"`
}

// WaiterProfile is a staff account provisioned by a restaurant owner.
// Waiters can view orders and move them through their status lifecycle
// but cannot touch the menu, settings or analytics.
type WaiterProfile struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique_index"`
	PasswordHash string `json:"-"`
}

// Account roles carried in JWT claims.
const (
	RoleOwner  = "owner"
	RoleWaiter = "waiter"
)
