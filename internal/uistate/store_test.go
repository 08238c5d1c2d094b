// internal/uistate/store_test.go
package uistate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront-state/internal/events"
	"github.com/novamart/storefront-state/internal/models"
	"github.com/novamart/storefront-state/internal/persist"
)

const testNamespace = "test.admin.ui"

func newTestStore(blobs persist.BlobStore) *Store {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(blobs, testNamespace, events.NewBus(), log)
}

func TestDefaults(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())

	snap := s.Snapshot()
	assert.True(t, snap.SidebarOpen)
	assert.Equal(t, DefaultModule, snap.ActiveModule)
	assert.Equal(t, models.ThemeLight, snap.Theme)
	assert.Empty(t, snap.SearchQuery)
	assert.Empty(t, snap.Notifications)
	assert.Empty(t, snap.SelectedItems)
}

func TestScalarSettersReplaceWholeValue(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())

	s.SetActiveModule("orders")
	s.SetSearchQuery("headphones")
	s.SetTheme(models.ThemeDark)
	s.SetSidebarOpen(false)

	snap := s.Snapshot()
	assert.Equal(t, "orders", snap.ActiveModule)
	assert.Equal(t, "headphones", snap.SearchQuery)
	assert.Equal(t, models.ThemeDark, snap.Theme)
	assert.False(t, snap.SidebarOpen)
}

func TestNotificationsPrepend(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())

	first := models.NewRewardNotification(50, "signup", "You earned 50 points")
	second := models.NewSecurityNotification("login", "New login from Chrome")
	s.PushNotification(first)
	s.PushNotification(second)

	notifications := s.Snapshot().Notifications
	require.Len(t, notifications, 2)
	assert.Equal(t, second.ID, notifications[0].ID)
	assert.Equal(t, first.ID, notifications[1].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())
	n := models.NewRewardNotification(10, "review", "Thanks for your review")
	s.PushNotification(n)

	assert.True(t, s.MarkNotificationRead(n.ID))
	assert.True(t, s.Snapshot().Notifications[0].Read)

	assert.False(t, s.MarkNotificationRead("missing"))
}

func TestToggleSelectedItemTwiceRestoresSet(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())
	s.ToggleSelectedItem("row-1")
	s.ToggleSelectedItem("row-2")

	before := s.Snapshot().SelectedItems
	require.Len(t, before, 2)

	s.ToggleSelectedItem("row-3")
	assert.Len(t, s.Snapshot().SelectedItems, 3)

	s.ToggleSelectedItem("row-3")
	after := s.Snapshot().SelectedItems
	assert.Equal(t, before, after)
	assert.Len(t, after, len(before))
}

func TestSelectedItemsNeverDuplicate(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())
	s.ToggleSelectedItem("row-1")
	s.ToggleSelectedItem("row-1")
	s.ToggleSelectedItem("row-1")

	assert.Equal(t, []string{"row-1"}, s.Snapshot().SelectedItems)
}

func TestClears(t *testing.T) {
	s := newTestStore(persist.NewMemoryStore())
	s.PushNotification(models.NewSecurityNotification("login", "New login"))
	s.ToggleSelectedItem("row-1")

	s.ClearNotifications()
	s.ClearSelectedItems()

	snap := s.Snapshot()
	assert.Empty(t, snap.Notifications)
	assert.Empty(t, snap.SelectedItems)
}

func TestPersistedSubsetRoundTrip(t *testing.T) {
	blobs := persist.NewMemoryStore()

	s := newTestStore(blobs)
	s.SetTheme(models.ThemeDark)
	s.SetSidebarOpen(false)
	s.SetActiveModule("customers")
	s.SetSearchQuery("denim")
	s.PushNotification(models.NewSecurityNotification("login", "New login"))

	// Simulated reload: a fresh store over the same blob namespace
	restored := newTestStore(blobs)
	snap := restored.Snapshot()

	assert.Equal(t, models.ThemeDark, snap.Theme)
	assert.False(t, snap.SidebarOpen)

	// Session-only fields reset to their defaults
	assert.Equal(t, DefaultModule, snap.ActiveModule)
	assert.Empty(t, snap.SearchQuery)
	assert.Empty(t, snap.Notifications)
	assert.Empty(t, snap.SelectedItems)
}

func TestPersistedBlobHoldsOnlyDurableSubset(t *testing.T) {
	blobs := persist.NewMemoryStore()
	s := newTestStore(blobs)
	s.SetSearchQuery("denim")
	s.SetTheme(models.ThemeSystem)

	data, err := blobs.Load(context.Background(), testNamespace)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "theme")
	assert.Contains(t, raw, "sidebar_open")
	assert.NotContains(t, raw, "search_query")
	assert.NotContains(t, raw, "active_module")
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	blobs := persist.NewMemoryStore()
	require.NoError(t, blobs.Save(context.Background(), testNamespace, []byte("{not json")))

	s := newTestStore(blobs)
	snap := s.Snapshot()
	assert.Equal(t, models.ThemeLight, snap.Theme)
	assert.True(t, snap.SidebarOpen)
}
