package handler

import (
	"context"
	"net/http"

	"github.com/cointrack/cointrack-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DefaultMaxConnectionsPerUser caps live connections (tabs, devices) per user
const DefaultMaxConnectionsPerUser = 10

// TokenValidator resolves a query-string token to the user it was issued for
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (userID string, err error)
}

// WebSocketHandler upgrades live-update connections and registers them with the hub
type WebSocketHandler struct {
	hub            *websocket.Hub
	validator      TokenValidator
	allowedOrigins map[string]struct{}
	maxPerUser     int
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, validator TokenValidator, allowedOrigins []string) *WebSocketHandler {
	h := &WebSocketHandler{
		hub:            hub,
		validator:      validator,
		allowedOrigins: make(map[string]struct{}, len(allowedOrigins)),
		maxPerUser:     DefaultMaxConnectionsPerUser,
	}
	for _, origin := range allowedOrigins {
		h.allowedOrigins[origin] = struct{}{}
	}
	h.upgrader = ws.Upgrader{
		ReadBufferSize:  maxInboundFrame,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Inbound frames are only pings and close frames
const maxInboundFrame = 512

// checkOrigin admits configured browser origins and non-browser clients
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if _, ok := h.allowedOrigins[origin]; ok {
		return true
	}
	log.Warn().Str("origin", origin).Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS handles GET /ws?token=...
//
// Browsers cannot set headers on the upgrade request, so the access token
// travels in the query string. The first message on a new connection is
// connection.ready.
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	userID, err := h.validator.ValidateToken(c.Request().Context(), token)
	if err != nil {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if h.hub.ClientCount(userID) >= h.maxPerUser {
		log.Warn().Str("user_id", userID).Int("limit", h.maxPerUser).Msg("WebSocket connection rejected: too many connections")
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many live connections")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, userID, h.hub)
	h.hub.Register(client)

	if data, err := websocket.ConnectionReady(client.ID()).ToJSON(); err == nil {
		_ = client.Send(data)
	}

	log.Info().
		Str("user_id", userID).
		Str("client_id", client.ID()).
		Int("user_connections", h.hub.ClientCount(userID)).
		Msg("WebSocket client connected")

	go client.Serve()
	return nil
}
