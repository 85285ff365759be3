package live

import (
	"encoding/json"
	"testing"

	"tabletab/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(h *Hub, restaurantID uint, buffer int) *Client {
	return &Client{hub: h, send: make(chan []byte, buffer), restaurantID: restaurantID}
}

func TestWatchedRestaurants(t *testing.T) {
	hub := NewHub()
	assert.Empty(t, hub.WatchedRestaurants())

	a := testClient(hub, 1, 1)
	b := testClient(hub, 2, 1)
	hub.register(a)
	hub.register(b)
	assert.ElementsMatch(t, []uint{1, 2}, hub.WatchedRestaurants())

	hub.unregister(a)
	assert.ElementsMatch(t, []uint{2}, hub.WatchedRestaurants())

	// Last client leaving removes the restaurant entirely.
	hub.unregister(b)
	assert.Empty(t, hub.WatchedRestaurants())
}

func TestPushOrderReachesOnlyOwningRestaurant(t *testing.T) {
	hub := NewHub()
	mine := testClient(hub, 1, 1)
	other := testClient(hub, 2, 1)
	hub.register(mine)
	hub.register(other)

	order := &models.Order{RestaurantID: 1, TableNumber: 3}
	hub.PushOrder(order)

	select {
	case payload := <-mine.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(payload, &env))
		assert.Equal(t, "order", env.Type)
	default:
		t.Fatal("expected a frame for restaurant 1")
	}

	select {
	case <-other.send:
		t.Fatal("restaurant 2 must not receive restaurant 1's order")
	default:
	}
}

func TestPushAnalyticsEnvelope(t *testing.T) {
	hub := NewHub()
	client := testClient(hub, 1, 1)
	hub.register(client)

	hub.PushAnalytics(1, &models.OrderAnalytics{TodayRevenue: 550})

	payload := <-client.send
	var env Envelope
	require.NoError(t, json.Unmarshal(payload, &env))
	assert.Equal(t, "analytics", env.Type)

	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"todayRevenue":550`)
}

func TestSlowConsumerDropsFrame(t *testing.T) {
	hub := NewHub()
	client := testClient(hub, 1, 1)
	hub.register(client)

	hub.PushOrder(&models.Order{RestaurantID: 1})
	// Buffer is full now; the second broadcast must not block.
	done := make(chan struct{})
	go func() {
		hub.PushOrder(&models.Order{RestaurantID: 1})
		close(done)
	}()
	<-done

	assert.Len(t, client.send, 1)
}
