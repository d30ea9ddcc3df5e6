package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/service"
)

// EventsHandler pushes store change notifications to the browser so open pages can re-render.
type EventsHandler struct {
	store *service.Store
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(store *service.Store) *EventsHandler {
	return &EventsHandler{store: store}
}

// Stream godoc
// @Summary Server-sent change events
// @Description Emits "ready" once, then a "change" event carrying fresh statistics after store mutations. Mutations that land while a change is pending share one event.
// @Tags Events
// @Produce text/event-stream
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	// Buffered and written without blocking: the store calls listeners synchronously,
	// so bursts of mutations collapse into a single pending event.
	changes := make(chan struct{}, 1)
	sub := h.store.AddListener(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer sub.Remove()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"requestId": getRequestID(c)})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-changes:
			c.SSEvent("change", h.store.GetStatistics())
			return true
		}
	})
}
