package orders

import (
	"context"
	"fmt"
	"time"

	"tabletab/internal/events"
	"tabletab/internal/models"
	"tabletab/internal/monitoring"

	"github.com/jinzhu/gorm"
)

// LineInput is one requested item on a new order.
type LineInput struct {
	MenuItemID uint               `json:"menu_item_id" binding:"required"`
	Quantity   int                `json:"quantity" binding:"required"`
	Size       models.PortionSize `json:"size" binding:"required"`
}

// Service owns the order lifecycle: creation from a cart, listing for the
// dashboards and status transitions. It also serves as the order record
// source for the analytics pipeline.
type Service struct {
	db        *gorm.DB
	publisher *events.Publisher
	metrics   *monitoring.Collector
}

// NewService creates an order service. publisher and metrics may be nil.
func NewService(db *gorm.DB, publisher *events.Publisher, metrics *monitoring.Collector) *Service {
	return &Service{db: db, publisher: publisher, metrics: metrics}
}

// Create stores a pending order for a table. Each line snapshots the price
// charged at this moment, so later menu edits do not rewrite history.
func (s *Service) Create(restaurantID uint, tableNumber int, lines []LineInput) (*models.Order, error) {
	order := &models.Order{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Status:       string(models.OrderStatusPending),
	}
	for _, in := range lines {
		order.Items = append(order.Items, models.OrderLine{
			MenuItemID: in.MenuItemID,
			Quantity:   in.Quantity,
			Size:       in.Size,
		})
	}
	if err := models.ValidateOrder(order); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	for i := range order.Items {
		var item models.MenuItem
		if err := tx.Where("id = ? AND restaurant_id = ?", order.Items[i].MenuItemID, restaurantID).
			First(&item).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("menu item %d not found", order.Items[i].MenuItemID)
		}
		price, ok := item.PriceFor(order.Items[i].Size)
		if !ok {
			tx.Rollback()
			return nil, fmt.Errorf("%s has no half portion", item.Name)
		}
		order.Items[i].UnitPrice = price
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.publisher.PublishOrderCreated(order)

	return order, nil
}

// List returns a restaurant's orders newest-first with lines and menu items
// attached.
func (s *Service) List(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// Get returns one order with its lines, scoped to the restaurant.
func (s *Service) Get(restaurantID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items.MenuItem").
		Where("id = ? AND restaurant_id = ?", orderID, restaurantID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order through its lifecycle. Only transitions out of
// pending and confirmed are permitted.
func (s *Service) UpdateStatus(restaurantID, orderID uint, status models.OrderStatus, waiterAction string) (*models.Order, error) {
	order, err := s.Get(restaurantID, orderID)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateStatusTransition(models.OrderStatus(order.Status), status); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": string(status)}
	if waiterAction != "" {
		updates["waiter_action"] = waiterAction
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = string(status)
	order.WaiterAction = waiterAction

	if s.metrics != nil {
		s.metrics.RecordStatusChange(string(status))
	}
	s.publisher.PublishOrderStatus(order)

	return order, nil
}

// FetchOrders returns the restaurant's non-cancelled orders created in
// [createdAfter, createdBefore), newest-first, with lines and menu item
// prices preloaded. A nil createdBefore leaves the window open. Implements
// analytics.OrderSource.
func (s *Service) FetchOrders(_ context.Context, restaurantID uint, createdAfter time.Time, createdBefore *time.Time) ([]models.Order, error) {
	query := s.db.Preload("Items.MenuItem").
		Where("restaurant_id = ?", restaurantID).
		Where("status <> ?", string(models.OrderStatusCancelled)).
		Where("created_at >= ?", createdAfter)
	if createdBefore != nil {
		query = query.Where("created_at < ?", *createdBefore)
	}

	var orders []models.Order
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}
