package api

import (
	"net/http"
	"strconv"

	"tabletab/internal/chat"
	"tabletab/internal/models"
	"tabletab/internal/orders"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	SessionID   string          `json:"session_id"`
	Message     string          `json:"message" binding:"required"`
	TableNumber string          `json:"table_number"`
	CartItems   []chat.CartItem `json:"cart_items"`
	History     []chat.Message  `json:"chat_history"`
}

type chatResponse struct {
	chat.Response
	Order *models.Order `json:"order,omitempty"`
}

// Chat handles one turn of the customer's conversation with the ordering
// assistant. When the assistant's reply confirms the order, the cart is
// written as a pending order and returned alongside the reply.
func (s *Server) Chat(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menuItems, err := s.menu.List(restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := s.assistant.Respond(c.Request.Context(), chat.Request{
		SessionID:      req.SessionID,
		Message:        req.Message,
		TableNumber:    req.TableNumber,
		RestaurantName: s.settings.RestaurantName(restaurantID, "our restaurant"),
		MenuItems:      menuItems,
		CartItems:      req.CartItems,
		History:        req.History,
	})
	if err != nil {
		s.metrics.RecordChatRequest("error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get assistant reply"})
		return
	}

	resp := chatResponse{Response: *result}

	if result.CreateOrder && len(result.CartItems) > 0 {
		if order := s.createChatOrder(restaurantID, result); order != nil {
			resp.Order = order
			resp.CartItems = nil // cart is consumed by the order
			s.metrics.RecordChatRequest("order")
		}
	} else {
		s.metrics.RecordChatRequest("reply")
	}

	c.JSON(http.StatusOK, resp)
}

// createChatOrder writes the confirmed cart as a pending order. A missing
// table number or stale cart is not fatal to the chat turn; the reply still
// goes back and the customer can try again.
func (s *Server) createChatOrder(restaurantID uint, result *chat.Response) *models.Order {
	table, err := strconv.Atoi(result.TableNumber)
	if err != nil {
		return nil
	}

	var lines []orders.LineInput
	for _, item := range result.CartItems {
		lines = append(lines, orders.LineInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Size:       item.Size,
		})
	}

	order, err := s.orders.Create(restaurantID, table, lines)
	if err != nil {
		return nil
	}
	s.hub.PushOrder(order)
	return order
}
