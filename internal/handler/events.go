package handler

import (
	"io"

	"heladosupply/internal/notify"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams store change events to the presentation layer over
// SSE, so it re-fetches only the collections named in each event.
type EventsHandler struct{ sub *notify.Subscriber }

func NewEventsHandler(sub *notify.Subscriber) *EventsHandler {
	return &EventsHandler{sub: sub}
}

// Stream opens one redis subscription per connected client and forwards
// events until the client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	events := make(chan notify.Event, 8)
	ctx := c.Request.Context()

	go func() {
		defer close(events)
		_ = h.sub.Listen(ctx, func(ev notify.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
	}()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
