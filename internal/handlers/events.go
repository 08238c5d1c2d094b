// internal/handlers/events.go
package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-state/internal/events"
)

type EventsHandler struct {
	bus *events.Bus
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// GET /v1/events
//
// Server-sent change feed: one "change" event per committed store mutation.
// The subscription is dropped when the client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		}
	})
}
