package api

import (
	"net/http"

	"tabletab/internal/models"
	"tabletab/internal/orders"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	TableNumber int                `json:"table_number" binding:"required"`
	Items       []orders.LineInput `json:"items" binding:"required"`
}

// PublicCreateOrder places an order straight from the menu page cart.
func (s *Server) PublicCreateOrder(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.Create(restaurantID, req.TableNumber, req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.PushOrder(order)
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the restaurant's orders newest-first.
func (s *Server) ListOrders(c *gin.Context) {
	list, err := s.orders.List(s.claims(c).RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	WaiterAction string `json:"waiter_action"`
}

// UpdateOrderStatus moves an order through its lifecycle.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := s.orders.UpdateStatus(
		s.claims(c).RestaurantID, id, models.OrderStatus(req.Status), req.WaiterAction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.PushOrder(order)
	c.JSON(http.StatusOK, order)
}

// LiveFeed upgrades to a WebSocket carrying order and analytics updates.
func (s *Server) LiveFeed(c *gin.Context) {
	s.hub.ServeWS(c, s.claims(c).RestaurantID)
}
