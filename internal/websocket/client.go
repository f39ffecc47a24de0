package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10 // must stay below pongWait

	// Clients never send application data; only control frames are read
	maxInboundSize = 512

	// sendBufferSize is the number of queued events before a client counts as too slow
	sendBufferSize = 256
)

// Client is one live-update connection of a user. The channel only flows
// server to client: every message is an Event telling the app to refetch.
type Client struct {
	id          string
	userID      string
	conn        *websocket.Conn
	hub         *Hub
	queue       chan []byte
	connectedAt time.Time
	logger      zerolog.Logger

	mu        sync.RWMutex
	closed    bool
	writing   bool
	closeOnce sync.Once
}

// NewClient creates a client for an upgraded connection
func NewClient(conn *websocket.Conn, userID string, hub *Hub) *Client {
	id := uuid.New().String()
	return &Client{
		id:          id,
		userID:      userID,
		conn:        conn,
		hub:         hub,
		queue:       make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
		logger:      log.With().Str("client_id", id).Str("user_id", userID).Logger(),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// UserID returns the user the connection belongs to
func (c *Client) UserID() string {
	return c.userID
}

// Send queues a message without blocking. A full queue yields ErrSlowClient.
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.queue <- data:
		return nil
	default:
		return ErrSlowClient
	}
}

// Close stops the client. Safe to call more than once and from any goroutine.
// While Serve runs, the writer sends the close frame and then closes the
// connection; otherwise the connection is closed here.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.queue)
		writing := c.writing
		c.mu.Unlock()

		if !writing {
			err = c.conn.Close()
		}
		c.logger.Debug().Dur("connected_for", time.Since(c.connectedAt)).Msg("WebSocket client closed")
	})
	return err
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Serve runs the connection until the peer goes away or the hub drops it.
// The writer runs in its own goroutine; Serve blocks on the reader.
func (c *Client) Serve() {
	c.mu.Lock()
	start := !c.closed
	c.writing = start
	c.mu.Unlock()

	if start {
		go c.writeLoop()
	}
	c.readLoop()
}

// readLoop consumes control frames so pongs extend the deadline. It returns
// when the peer disconnects or stops answering pings.
func (c *Client) readLoop() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("WebSocket unexpected close")
			}
			return
		}
	}
}

// writeLoop delivers queued events and keeps the connection alive with pings.
// It owns closing the connection once it has started.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.queue:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Queue closed: the hub dropped us or the server is shutting down
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "reconnect and refetch"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Warn().Err(err).Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
