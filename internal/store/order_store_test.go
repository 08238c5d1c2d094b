// internal/store/order_store_test.go
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/models"
)

func newTestOrderStore() *OrderStore {
	return NewOrderStore(events.NewBus())
}

func testOrder(id, customerID string) models.Order {
	return models.Order{
		ID:         id,
		CustomerID: customerID,
		Items: []models.CartItem{
			{Product: models.Product{ID: "P1", Name: "Aurora Wireless Headphones", Price: 129.99}, Quantity: 1},
		},
		Subtotal:      129.99,
		Tax:           10.40,
		Shipping:      5.00,
		Total:         145.39,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPending,
	}
}

func TestOrderStoreListAllKeepsCreationOrder(t *testing.T) {
	s := newTestOrderStore()
	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		s.Create(testOrder(id, "C1"))
	}

	all := s.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "ORD-1", all[0].ID)
	assert.Equal(t, "ORD-2", all[1].ID)
	assert.Equal(t, "ORD-3", all[2].ID)
}

func TestOrderStoreUpdateOrderStatus(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-100", "C1"))

	before, ok := s.GetByID("ORD-100")
	require.True(t, ok)
	require.Equal(t, models.OrderStatusPending, before.OrderStatus)

	require.True(t, s.UpdateOrderStatus("ORD-100", models.OrderStatusShipped))

	after, ok := s.GetByID("ORD-100")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, after.OrderStatus)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt),
		"UpdatedAt must be strictly greater after a status change")
	// Payment status mutates independently and stays untouched
	assert.Equal(t, before.PaymentStatus, after.PaymentStatus)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestOrderStoreUpdateTouchesOnlyMatchingOrder(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-1", "C1"))
	s.Create(testOrder("ORD-2", "C2"))
	s.Create(testOrder("ORD-3", "C3"))

	before := s.ListAll()
	s.UpdateOrderStatus("ORD-2", models.OrderStatusConfirmed)
	after := s.ListAll()

	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, models.OrderStatusConfirmed, after[1].OrderStatus)
}

func TestOrderStoreUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-1", "C1"))

	before := s.ListAll()
	assert.False(t, s.UpdateOrderStatus("ORD-404", models.OrderStatusShipped))
	assert.False(t, s.UpdatePaymentStatus("ORD-404", models.PaymentStatusCompleted))
	assert.Equal(t, before, s.ListAll())
}

func TestOrderStoreUpdatePaymentStatus(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-1", "C1"))

	require.True(t, s.UpdatePaymentStatus("ORD-1", models.PaymentStatusCompleted))

	got, ok := s.GetByID("ORD-1")
	require.True(t, ok)
	assert.Equal(t, models.PaymentStatusCompleted, got.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, got.OrderStatus)
}

func TestOrderStoreUpdatedAtStrictlyIncreasesOnFrozenClock(t *testing.T) {
	s := newTestOrderStore()
	frozen := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	s.Create(testOrder("ORD-1", "C1"))
	first, _ := s.GetByID("ORD-1")

	s.UpdateOrderStatus("ORD-1", models.OrderStatusConfirmed)
	second, _ := s.GetByID("ORD-1")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	s.UpdateOrderStatus("ORD-1", models.OrderStatusShipped)
	third, _ := s.GetByID("ORD-1")
	assert.True(t, third.UpdatedAt.After(second.UpdatedAt))
}

func TestOrderStoreGetByIDMissing(t *testing.T) {
	s := newTestOrderStore()
	_, ok := s.GetByID("never-created")
	assert.False(t, ok)
}

func TestOrderStoreDuplicateIDsCoexist(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-1", "C1"))
	s.Create(testOrder("ORD-1", "C2"))

	assert.Equal(t, 2, s.Len())

	// Lookup returns the first record in sequence order
	got, ok := s.GetByID("ORD-1")
	require.True(t, ok)
	assert.Equal(t, "C1", got.CustomerID)
}

func TestOrderStoreOwnerFilters(t *testing.T) {
	s := newTestOrderStore()
	o1 := testOrder("ORD-1", "C1")
	o1.SellerID = "S1"
	o2 := testOrder("ORD-2", "C2")
	o2.SellerID = "S1"
	o3 := testOrder("ORD-3", "C1")
	s.Create(o1)
	s.Create(o2)
	s.Create(o3)

	byCustomer := s.ByCustomer("C1")
	require.Len(t, byCustomer, 2)
	assert.Equal(t, "ORD-1", byCustomer[0].ID)
	assert.Equal(t, "ORD-3", byCustomer[1].ID)
	for _, o := range byCustomer {
		assert.Equal(t, "C1", o.CustomerID)
	}

	bySeller := s.BySeller("S1")
	require.Len(t, bySeller, 2)
	assert.Equal(t, "ORD-1", bySeller[0].ID)
	assert.Equal(t, "ORD-2", bySeller[1].ID)

	assert.Empty(t, s.ByCustomer("C404"))
}

func TestOrderStoreSnapshotsDoNotAliasStoreState(t *testing.T) {
	s := newTestOrderStore()
	s.Create(testOrder("ORD-1", "C1"))

	snap, ok := s.GetByID("ORD-1")
	require.True(t, ok)
	snap.Items[0].Quantity = 99

	again, _ := s.GetByID("ORD-1")
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestOrderStorePublishesChangeEvents(t *testing.T) {
	bus := events.NewBus()
	s := NewOrderStore(bus)

	ch, cancel := bus.Subscribe()
	defer cancel()

	s.Create(testOrder("ORD-1", "C1"))
	ev := <-ch
	assert.Equal(t, events.ResourceOrders, ev.Resource)
	assert.Equal(t, events.ActionCreated, ev.Action)
	assert.Equal(t, "ORD-1", ev.EntityID)

	s.UpdateOrderStatus("ORD-1", models.OrderStatusShipped)
	ev = <-ch
	assert.Equal(t, events.ActionUpdated, ev.Action)
	assert.Equal(t, "order_status", ev.Field)

	// A no-op update publishes nothing
	s.UpdateOrderStatus("ORD-404", models.OrderStatusShipped)
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event after no-op update: %+v", ev)
	default:
	}
}
