package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"

	"movelist-backend/internal/api/presenters"
	"movelist-backend/pkg/watch"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type (
	StreamHandler interface {
		Stream(c *fiber.Ctx) error
	}

	streamHandler struct {
		hub *watch.Hub
	}
)

func NewStreamHandler(hub *watch.Hub) StreamHandler {
	return &streamHandler{hub: hub}
}

// Stream pushes full-collection snapshots over SSE. Each event replaces the
// client's previous view of the collection.
func (h *streamHandler) Stream(c *fiber.Ctx) error {
	collection := watch.Collection(c.Query("collection", string(watch.CollectionItems)))
	switch collection {
	case watch.CollectionItems, watch.CollectionPeople, watch.CollectionSettings:
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "unknown collection", nil)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	snapshots, cancel := h.hub.Subscribe(collection)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for snapshot := range snapshots {
			payload, err := json.Marshal(snapshot)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}
