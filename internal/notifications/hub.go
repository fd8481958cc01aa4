package notifications

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vendora/merchant-console/merchant-console-backend/internal/provisioning"
)

// StatusEvent is pushed to subscribed clients on every provisioning
// transition. The poll endpoint remains the contract of record; this channel
// just saves a round trip.
type StatusEvent struct {
	TenantID  string              `json:"tenant_id"`
	Status    provisioning.Status `json:"status"`
	IsReady   bool                `json:"is_ready"`
	Timestamp time.Time           `json:"timestamp"`
}

type client struct {
	tenantID string
	conn     *websocket.Conn
	send     chan StatusEvent
}

// Hub fans provisioning status events out to websocket subscribers, one
// subscription per tenant id.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan StatusEvent
	stop       chan struct{}
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewHub creates a hub and starts its dispatch loop.
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan StatusEvent, 256),
		stop:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
		case event := <-h.broadcast:
			for c := range h.clients {
				if c.tenantID != event.TenantID {
					continue
				}
				select {
				case c.send <- event:
				default:
					// Slow consumer; drop the connection rather than block
					// the dispatch loop.
					delete(h.clients, c)
					close(c.send)
				}
			}
		case <-h.stop:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

// BroadcastStatus implements provisioning.Broadcaster.
func (h *Hub) BroadcastStatus(tenantID string, status provisioning.Status, isReady bool) {
	event := StatusEvent{
		TenantID:  tenantID,
		Status:    status,
		IsReady:   isReady,
		Timestamp: time.Now(),
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("Dropping status event, broadcast buffer full",
			zap.String("tenant_id", tenantID))
	}
}

// drop unregisters a client without blocking after shutdown.
func (h *Hub) drop(c *client) {
	select {
	case h.unregister <- c:
	case <-h.stop:
	}
}

// Close shuts the dispatch loop down and disconnects all clients.
func (h *Hub) Close() {
	close(h.stop)
}

// HandleWS upgrades a request to a websocket subscription for one tenant.
func (h *Hub) HandleWS(c *gin.Context) {
	tenantID := c.Param("tenantId")
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		tenantID: tenantID,
		conn:     conn,
		send:     make(chan StatusEvent, 16),
	}
	// The dispatch loop is gone once the hub is closed; a blocked send here
	// would leak the connection.
	select {
	case h.register <- cl:
	case <-h.stop:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			h.drop(c)
			return
		}
	}
}

// readPump discards inbound frames; it exists to observe the close handshake.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.drop(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
