package menu

import (
	"github.com/jinzhu/gorm"

	"tabletab/internal/models"
)

// Service owns menu item CRUD for restaurant owners and the public menu
// read used by the QR landing page and the chat assistant.
type Service struct {
	db *gorm.DB
}

// NewService creates a menu service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every menu item belonging to a restaurant.
func (s *Service) List(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("category, name").
		Find(&items).Error
	return items, err
}

// Create validates and stores a new menu item for the restaurant.
func (s *Service) Create(restaurantID uint, item *models.MenuItem) error {
	item.ID = 0
	item.RestaurantID = restaurantID
	if err := models.ValidateMenuItem(item); err != nil {
		return err
	}
	return s.db.Create(item).Error
}

// Update overwrites an existing item's editable fields.
func (s *Service) Update(restaurantID, itemID uint, updated *models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&item).Error; err != nil {
		return nil, err
	}

	item.Name = updated.Name
	item.Category = updated.Category
	item.ImageURL = updated.ImageURL
	item.FullPrice = updated.FullPrice
	item.HalfPrice = updated.HalfPrice
	item.IsVegetarian = updated.IsVegetarian
	if err := models.ValidateMenuItem(&item); err != nil {
		return nil, err
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a menu item. Historical order lines keep their snapshot
// price, but their current-price lookups become undefined from here on.
func (s *Service) Delete(restaurantID, itemID uint) error {
	return s.db.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).
		Delete(&models.MenuItem{}).Error
}

// ToggleOutOfStock flips an item's availability flag and returns the new state.
func (s *Service) ToggleOutOfStock(restaurantID, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&item).Error; err != nil {
		return nil, err
	}
	item.OutOfStock = !item.OutOfStock
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
