// internal/events/bus_test.go
package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	b := NewBus()
	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(Event{Resource: ResourceOrders, Action: ActionCreated, EntityID: "ORD-1"})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "ORD-1", ev1.EntityID)
	assert.Equal(t, ev1.Resource, ev2.Resource)
	assert.False(t, ev1.Timestamp.IsZero())
}

func TestBusCancelStopsDelivery(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	assert.Equal(t, 0, b.SubscriberCount())

	// Channel is closed after cancel
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent
	cancel()

	// Publishing after cancel must not panic
	b.Publish(Event{Resource: ResourceUIState, Action: ActionUpdated})
}

func TestBusDropsEventsForSlowSubscribers(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe()
	defer cancel()

	// Overrun the buffer without draining; Publish must never block
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(Event{Resource: ResourceWishlist, Action: ActionCreated})
	}

	assert.Len(t, ch, subscriberBuffer)
}
