package settings

import (
	"github.com/jinzhu/gorm"

	"tabletab/internal/models"
)

// Service stores per-restaurant billing details: display name, address and
// GST registration. The display name also feeds the chat assistant greeting.
type Service struct {
	db *gorm.DB
}

// NewService creates a settings service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the restaurant's settings, or gorm.ErrRecordNotFound when none
// have been saved yet.
func (s *Service) Get(restaurantID uint) (*models.RestaurantSettings, error) {
	var settings models.RestaurantSettings
	if err := s.db.Where("restaurant_id = ?", restaurantID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or overwrites the restaurant's settings.
func (s *Service) Upsert(restaurantID uint, in *models.RestaurantSettings) (*models.RestaurantSettings, error) {
	var settings models.RestaurantSettings
	err := s.db.Where("restaurant_id = ?", restaurantID).First(&settings).Error
	if err != nil && !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	settings.RestaurantID = restaurantID
	settings.RestaurantName = in.RestaurantName
	settings.Address = in.Address
	settings.GSTNumber = in.GSTNumber
	settings.GSTRate = in.GSTRate

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// RestaurantName returns the display name, falling back to the given default
// when settings are missing.
func (s *Service) RestaurantName(restaurantID uint, fallback string) string {
	settings, err := s.Get(restaurantID)
	if err != nil || settings.RestaurantName == "" {
		return fallback
	}
	return settings.RestaurantName
}
