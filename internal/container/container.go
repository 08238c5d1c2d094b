// internal/container/container.go
package container

import (
	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-state/internal/catalog"
	"github.com/novamart/storefront-state/internal/config"
	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/persist"
	"github.com/novamart/storefront-state/internal/store"
	"github.com/novamart/storefront-state/internal/uistate"
)

// Container is the application's state root: every store is constructed here
// exactly once at boot and handed to the presentation layer explicitly.
// There are no package-level singletons; holding a *Container is the only
// way to reach the stores.
type Container struct {
	Orders   *store.OrderStore
	Wishlist *store.WishlistStore
	UIState  *uistate.Store
	Catalog  *catalog.Catalog
	Bus      *events.Bus
}

// New wires the stores together. The wishlist pushes its user-facing
// notifications into the UI-state store, so the UI-state store is built
// first.
func New(cfg *config.Config, blobs persist.BlobStore, log *logrus.Logger) *Container {
	bus := events.NewBus()
	ui := uistate.New(blobs, cfg.UIState.Namespace, bus, log)

	return &Container{
		Orders:   store.NewOrderStore(bus),
		Wishlist: store.NewWishlistStore(bus, ui),
		UIState:  ui,
		Catalog:  catalog.New(),
		Bus:      bus,
	}
}
