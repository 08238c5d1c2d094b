// internal/uistate/store.go
package uistate

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/persist"
)

// DefaultModule is the dashboard section shown after a fresh start.
const DefaultModule = "dashboard"

// Snapshot is a copy of every UI-state field, handed out by value.
type Snapshot struct {
	SidebarOpen   bool                  `json:"sidebar_open"`
	ActiveModule  string                `json:"active_module"`
	Theme         models.Theme          `json:"theme"`
	SearchQuery   string                `json:"search_query"`
	Notifications []models.Notification `json:"notifications"`
	SelectedItems []string              `json:"selected_items"`
}

// persistedState is the durable subset. Everything else resets to its
// default on restart.
type persistedState struct {
	Theme       models.Theme `json:"theme"`
	SidebarOpen bool         `json:"sidebar_open"`
}

// Store holds the fixed set of admin UI fields. Each scalar field has one
// whole-value setter; the notifications list prepends and the selected-items
// set toggles membership. Theme and sidebar visibility are written through
// the blob boundary on every change, fire-and-forget.
type Store struct {
	mu sync.RWMutex

	sidebarOpen   bool
	activeModule  string
	theme         models.Theme
	searchQuery   string
	notifications []models.Notification
	selectedItems []string

	bus       *events.Bus
	blobs     persist.BlobStore
	namespace string
	log       *logrus.Logger
}

// New builds the store with defaults, then restores the persisted subset
// from the blob boundary. A missing snapshot is the first-run case, not an
// error; a corrupt one is logged and ignored.
func New(blobs persist.BlobStore, namespace string, bus *events.Bus, log *logrus.Logger) *Store {
	s := &Store{
		sidebarOpen:  true,
		activeModule: DefaultModule,
		theme:        models.ThemeLight,
		bus:          bus,
		blobs:        blobs,
		namespace:    namespace,
		log:          log,
	}

	data, err := blobs.Load(context.Background(), namespace)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			log.WithError(err).Warn("Failed to load UI state snapshot")
		}
		return s
	}

	var saved persistedState
	if err := json.Unmarshal(data, &saved); err != nil {
		log.WithError(err).Warn("Discarding corrupt UI state snapshot")
		return s
	}
	if saved.Theme.Valid() {
		s.theme = saved.Theme
	}
	s.sidebarOpen = saved.SidebarOpen
	return s
}

func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	s.sidebarOpen = open
	snap := persistedState{Theme: s.theme, SidebarOpen: s.sidebarOpen}
	s.mu.Unlock()

	s.persist(snap)
	s.publish("sidebar_open")
}

func (s *Store) SetActiveModule(module string) {
	s.mu.Lock()
	s.activeModule = module
	s.mu.Unlock()
	s.publish("active_module")
}

func (s *Store) SetTheme(theme models.Theme) {
	s.mu.Lock()
	s.theme = theme
	snap := persistedState{Theme: s.theme, SidebarOpen: s.sidebarOpen}
	s.mu.Unlock()

	s.persist(snap)
	s.publish("theme")
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()
	s.publish("search_query")
}

// PushNotification prepends; the newest notification is always first.
func (s *Store) PushNotification(n models.Notification) {
	s.mu.Lock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
	s.mu.Unlock()
	s.publish("notifications")
}

// MarkNotificationRead flags the matching notification; unknown ids are a
// silent no-op.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.publish("notifications")
	}
	return found
}

func (s *Store) ClearNotifications() {
	s.mu.Lock()
	s.notifications = nil
	s.mu.Unlock()
	s.publish("notifications")
}

// ToggleSelectedItem flips membership: present ids are removed, absent ids
// appended. Two identical calls return the set to its original state.
func (s *Store) ToggleSelectedItem(id string) {
	s.mu.Lock()
	removed := false
	for i, existing := range s.selectedItems {
		if existing == id {
			s.selectedItems = append(s.selectedItems[:i], s.selectedItems[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.selectedItems = append(s.selectedItems, id)
	}
	s.mu.Unlock()
	s.publish("selected_items")
}

func (s *Store) ClearSelectedItems() {
	s.mu.Lock()
	s.selectedItems = nil
	s.mu.Unlock()
	s.publish("selected_items")
}

// Snapshot returns a copy of every field; mutating it never touches the
// store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		SidebarOpen:   s.sidebarOpen,
		ActiveModule:  s.activeModule,
		Theme:         s.theme,
		SearchQuery:   s.searchQuery,
		Notifications: append([]models.Notification(nil), s.notifications...),
		SelectedItems: append([]string(nil), s.selectedItems...),
	}
}

// persist writes the durable subset through the blob boundary. Failures are
// logged and dropped; nothing acknowledges or retries.
func (s *Store) persist(snap persistedState) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.WithError(err).Error("Failed to encode UI state snapshot")
		return
	}
	if err := s.blobs.Save(context.Background(), s.namespace, data); err != nil {
		s.log.WithError(err).Warn("Failed to persist UI state snapshot")
	}
}

func (s *Store) publish(field string) {
	s.bus.Publish(events.Event{
		Resource: events.ResourceUIState,
		Action:   events.ActionUpdated,
		Field:    field,
	})
}
