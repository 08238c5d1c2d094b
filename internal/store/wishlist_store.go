// internal/store/wishlist_store.go
package store

import (
	"fmt"

	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/models"
)

// Notifier receives the user-facing notifications wishlist mutations emit.
// The UI-state store satisfies this; tests plug in a recorder.
type Notifier interface {
	PushNotification(models.Notification)
}

// WishlistStore holds bare product references, one per product id as long as
// callers mutate through Toggle. Every mutation emits a user-facing
// notification with a distinct message for add vs remove.
type WishlistStore struct {
	products *Collection[models.Product]
	bus      *events.Bus
	notifier Notifier
}

func NewWishlistStore(bus *events.Bus, notifier Notifier) *WishlistStore {
	return &WishlistStore{
		products: NewCollection[models.Product](),
		bus:      bus,
		notifier: notifier,
	}
}

// Add appends the product to the wishlist.
func (s *WishlistStore) Add(p models.Product) {
	s.products.Append(p.Clone())
	s.notifier.PushNotification(models.NewWishlistNotification(
		p.ID, p.Name, true, fmt.Sprintf("%s added to your wishlist", p.Name)))
	s.bus.Publish(events.Event{
		Resource: events.ResourceWishlist,
		Action:   events.ActionCreated,
		EntityID: p.ID,
	})
}

// Remove drops the product with the given id. Removing an absent id is a
// silent no-op and emits nothing.
func (s *WishlistStore) Remove(id string) bool {
	p, ok := s.products.Get(id)
	if !ok {
		return false
	}
	if !s.products.Remove(id) {
		return false
	}
	s.notifier.PushNotification(models.NewWishlistNotification(
		p.ID, p.Name, false, fmt.Sprintf("%s removed from your wishlist", p.Name)))
	s.bus.Publish(events.Event{
		Resource: events.ResourceWishlist,
		Action:   events.ActionRemoved,
		EntityID: id,
	})
	return true
}

// Contains reports membership by product id.
func (s *WishlistStore) Contains(id string) bool {
	return s.products.Contains(id)
}

// Toggle removes the product when present, appends it otherwise. It is
// defined purely in terms of Contains + Add/Remove; there is no separate
// toggle state. Returns true when the product ends up in the wishlist.
func (s *WishlistStore) Toggle(p models.Product) bool {
	if s.Contains(p.ID) {
		s.Remove(p.ID)
		return false
	}
	s.Add(p)
	return true
}

// ListAll returns an insertion-order snapshot.
func (s *WishlistStore) ListAll() []models.Product {
	items := s.products.All()
	out := make([]models.Product, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}

func (s *WishlistStore) Len() int {
	return s.products.Len()
}
