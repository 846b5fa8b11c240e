package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests to live feed connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Open the live activity feed
// @Description Upgrades the connection to a WebSocket that streams communication, note and student events as JSON, one object per line. Pass studentId to only receive events about one student.
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Only stream events for this student"
// @Param token query string false "Access token, for clients that cannot set headers"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /feed/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	userID := c.GetString("userID")

	topic := TopicAll
	if studentID := c.Query("studentId"); studentID != "" {
		topic = StudentTopic(studentID)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("userID", userID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: userID,
		topic:  topic,
		logger: h.logger,
	}

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		h.logger.Warn().Str("userID", userID).Msg("Feed hub stopped, closing connection")
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("topic", topic).
		Str("userID", userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("Feed connection established")
}
