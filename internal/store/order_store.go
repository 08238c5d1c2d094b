// internal/store/order_store.go
package store

import (
	"time"

	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/models"
)

// OrderStore holds every order in creation order. Orders are created once by
// the caller (ids, money fields and items already computed) and only their
// two status fields mutate afterwards; nothing in this layer deletes them.
type OrderStore struct {
	orders *Collection[models.Order]
	bus    *events.Bus

	// now is swappable so tests can control UpdatedAt stamping.
	now func() time.Time
}

func NewOrderStore(bus *events.Bus) *OrderStore {
	return &OrderStore{
		orders: NewCollection[models.Order](),
		bus:    bus,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create appends the order to the sequence. Duplicate ids are the caller's
// responsibility; two orders with the same id simply coexist.
func (s *OrderStore) Create(order models.Order) models.Order {
	ts := s.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = ts
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = order.CreatedAt
	}
	s.orders.Append(order.Clone())

	s.bus.Publish(events.Event{
		Resource: events.ResourceOrders,
		Action:   events.ActionCreated,
		EntityID: order.ID,
	})
	return order
}

// UpdateOrderStatus sets the fulfilment status of the matching order and
// stamps a fresh UpdatedAt. An unknown id is a silent no-op; the bool tells
// the caller whether anything changed.
func (s *OrderStore) UpdateOrderStatus(id string, status models.OrderStatus) bool {
	return s.updateStatus(id, "order_status", func(o models.Order) models.Order {
		o.OrderStatus = status
		return o
	})
}

// UpdatePaymentStatus is the payment-side twin of UpdateOrderStatus; the two
// status fields mutate independently.
func (s *OrderStore) UpdatePaymentStatus(id string, status models.PaymentStatus) bool {
	return s.updateStatus(id, "payment_status", func(o models.Order) models.Order {
		o.PaymentStatus = status
		return o
	})
}

func (s *OrderStore) updateStatus(id, field string, apply func(models.Order) models.Order) bool {
	ts := s.now()
	changed := s.orders.Replace(id, func(o models.Order) models.Order {
		o = apply(o)
		o.UpdatedAt = advance(o.UpdatedAt, ts)
		return o
	})
	if changed {
		s.bus.Publish(events.Event{
			Resource: events.ResourceOrders,
			Action:   events.ActionUpdated,
			EntityID: id,
			Field:    field,
		})
	}
	return changed
}

// GetByID returns the first order with the given id, absent-value style.
func (s *OrderStore) GetByID(id string) (models.Order, bool) {
	o, ok := s.orders.Get(id)
	if !ok {
		return models.Order{}, false
	}
	return o.Clone(), true
}

// ByCustomer returns the customer's orders in original relative order.
func (s *OrderStore) ByCustomer(customerID string) []models.Order {
	return cloneOrders(s.orders.Filter(func(o models.Order) bool {
		return o.CustomerID == customerID
	}))
}

// BySeller is the same filter over the seller owner field.
func (s *OrderStore) BySeller(sellerID string) []models.Order {
	return cloneOrders(s.orders.Filter(func(o models.Order) bool {
		return o.SellerID == sellerID
	}))
}

// ListAll returns an insertion-order snapshot of every order.
func (s *OrderStore) ListAll() []models.Order {
	return cloneOrders(s.orders.All())
}

func (s *OrderStore) Len() int {
	return s.orders.Len()
}

func cloneOrders(in []models.Order) []models.Order {
	out := make([]models.Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

// advance returns ts, nudged forward when the clock hasn't moved past the
// previous stamp, so UpdatedAt is strictly increasing per record.
func advance(prev, ts time.Time) time.Time {
	if ts.After(prev) {
		return ts
	}
	return prev.Add(time.Millisecond)
}
