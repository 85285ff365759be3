package events

import (
	"encoding/json"
	"fmt"
	"log"

	"tabletab/internal/models"

	"github.com/nats-io/nats.go"
)

// NATS subjects for order lifecycle events.
const (
	SubjectOrderCreated = "orders.created"
	SubjectOrderStatus  = "orders.status"
)

// OrderEvent is the payload published for order lifecycle changes.
type OrderEvent struct {
	OrderID      uint   `json:"order_id"`
	RestaurantID uint   `json:"restaurant_id"`
	TableNumber  int    `json:"table_number"`
	Status       string `json:"status"`
}

// Publisher emits order events to NATS. A nil Publisher is a no-op, so
// callers never need to guard for an unconfigured broker.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to the NATS server at url.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

// PublishOrderCreated announces a newly placed order.
func (p *Publisher) PublishOrderCreated(order *models.Order) {
	p.publish(SubjectOrderCreated, order)
}

// PublishOrderStatus announces an order status change.
func (p *Publisher) PublishOrderStatus(order *models.Order) {
	p.publish(SubjectOrderStatus, order)
}

func (p *Publisher) publish(subject string, order *models.Order) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(OrderEvent{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		TableNumber:  order.TableNumber,
		Status:       order.Status,
	})
	if err != nil {
		log.Printf("failed to encode %s event: %v", subject, err)
		return
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		log.Printf("failed to publish %s event: %v", subject, err)
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
