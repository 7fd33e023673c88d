package notifications

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/charlesng35/marketadmin/internal/models"
	"github.com/charlesng35/marketadmin/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	defaultBufferSize = 32
)

// Event is the JSON frame delivered to subscribers.
type Event struct {
	Event    string          `json:"event"`
	Audience models.Audience `json:"audience"`
	Data     any             `json:"data,omitempty"`
	SentAt   time.Time       `json:"sent_at"`
}

type controlMessage struct {
	Action   string `json:"action"`
	Audience string `json:"audience"`
}

// Hub fans sent notifications out to WebSocket subscribers. Each subscriber listens as one
// audience segment: sellers receive events for sellers and all, buyers for buyers and all, and
// an "all" subscriber receives every event.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewHub constructs a notification hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				originHost := hostWithoutPort(origin)
				return originHost == hostWithoutPort(r.Host) || isLoopback(originHost)
			},
		},
		log: logger.WithModule("notification-hub"),
	}
}

// ParseAudience validates a subscriber segment, defaulting blank values to all.
func ParseAudience(value string) (models.Audience, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return models.AudienceAll, true
	}
	for _, audience := range models.Audiences {
		if string(audience) == value {
			return audience, true
		}
	}
	return "", false
}

// Serve upgrades the request to a WebSocket and subscribes it as audience.
func (h *Hub) Serve(audience models.Audience, w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		hub:      h,
		socket:   conn,
		audience: audience,
		send:     make(chan Event, defaultBufferSize),
	}
	h.register(cl)

	go cl.writeLoop()
	cl.readLoop()
}

// Broadcast delivers event to every subscriber whose segment matches audience and returns the
// number of subscribers it was queued for. Slow subscribers are disconnected rather than
// blocking the broadcast.
func (h *Hub) Broadcast(audience models.Audience, event string, payload any) int {
	frame := Event{Event: event, Audience: audience, Data: payload, SentAt: time.Now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for cl := range h.clients {
		if !cl.receives(audience) {
			continue
		}
		select {
		case cl.send <- frame:
			delivered++
		default:
			h.log.Warn("dropping slow notification subscriber", zap.String("audience", string(cl.segment())))
			go cl.close()
		}
	}
	return delivered
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[cl] = struct{}{}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, cl)
}

type client struct {
	hub    *Hub
	socket *websocket.Conn
	send   chan Event
	once   sync.Once

	mu       sync.RWMutex
	audience models.Audience
}

func (c *client) segment() models.Audience {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.audience
}

func (c *client) receives(audience models.Audience) bool {
	segment := c.segment()
	return segment == models.AudienceAll || audience == models.AudienceAll || segment == audience
}

func (c *client) readLoop() {
	defer c.close()

	c.socket.SetReadLimit(maxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("notification subscriber closed unexpectedly", zap.Error(err))
			}
			return
		}

		var ctrl controlMessage
		if err := json.Unmarshal(payload, &ctrl); err != nil {
			continue
		}
		if strings.ToLower(strings.TrimSpace(ctrl.Action)) != "subscribe" {
			continue
		}
		if audience, ok := ParseAudience(ctrl.Audience); ok {
			c.mu.Lock()
			c.audience = audience
			c.mu.Unlock()
		}
	}
}

func (c *client) writeLoop() {
	defer c.close()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.socket.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close unregisters before closing send so Broadcast never writes to a closed channel.
func (c *client) close() {
	c.once.Do(func() {
		c.hub.unregister(c)
		close(c.send)
		_ = c.socket.Close()
	})
}

func hostWithoutPort(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}

	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		parsed, err := http.NewRequest(http.MethodGet, host, nil)
		if err == nil {
			return hostWithoutPort(parsed.URL.Host)
		}
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func isLoopback(host string) bool {
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return strings.EqualFold(host, "localhost")
}
