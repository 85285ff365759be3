package live

import (
	"encoding/json"
	"log"
	"sync"

	"tabletab/internal/models"
)

// Envelope is the framing for every message pushed to dashboard clients.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans order and analytics updates out to the dashboard WebSocket
// clients of each restaurant. Implements analytics.Feed.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*Client]bool)}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.restaurantID] == nil {
		h.clients[c.restaurantID] = make(map[*Client]bool)
	}
	h.clients[c.restaurantID][c] = true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.restaurantID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.restaurantID)
		}
	}
}

// WatchedRestaurants returns the restaurants that currently have at least
// one connected dashboard.
func (h *Hub) WatchedRestaurants() []uint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// PushAnalytics broadcasts a refreshed aggregate to a restaurant's dashboards.
func (h *Hub) PushAnalytics(restaurantID uint, a *models.OrderAnalytics) {
	h.broadcast(restaurantID, Envelope{Type: "analytics", Data: a})
}

// PushOrder broadcasts a new or updated order to a restaurant's dashboards.
func (h *Hub) PushOrder(order *models.Order) {
	h.broadcast(order.RestaurantID, Envelope{Type: "order", Data: order})
}

func (h *Hub) broadcast(restaurantID uint, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		log.Printf("failed to encode %s broadcast: %v", env.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[restaurantID] {
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop the frame rather than block the hub.
		}
	}
}
