package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/supplyplan-backend/internal/logger"
	"github.com/yungbote/supplyplan-backend/internal/sse"
)

// EventsHandler streams plan-run progress over SSE. Clients subscribe to
// the global runs channel, plus a per-run channel when ?run_id= is given.
type EventsHandler struct {
	log *logger.Logger
	hub *sse.SSEHub
}

func NewEventsHandler(log *logger.Logger, hub *sse.SSEHub) *EventsHandler {
	return &EventsHandler{
		log: log.With("handler", "EventsHandler"),
		hub: hub,
	}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, sse.RunsChannel)
	if raw := c.Query("run_id"); raw != "" {
		if runID, err := uuid.Parse(raw); err == nil {
			h.hub.AddChannel(client, sse.RunChannel(runID))
		}
	}
	defer h.hub.CloseClient(client)
	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
