package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"brokerage/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	clientBuffer    = 64
	broadcastBuffer = 256

	orderIDQueryParam = "orderId"
)

type hubLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Message struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

type envelope struct {
	orderID int64
	payload []byte
}

type client struct {
	conn    *websocket.Conn
	send    chan []byte
	orderID int64 // 0 - все заказы
}

// Hub рассылает события подключенным клиентам. Клиент с orderId получает только
// события своего заказа. Медленный клиент отключается, чтобы не задерживать остальных.
type Hub struct {
	log        hubLogger
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan envelope
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(log hubLogger) *Hub {
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan envelope, broadcastBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// Run обслуживает регистрацию и рассылку до отмены ctx, затем закрывает всех клиентов.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Info("websocket client connected",
				logger.NewField("client_count", count),
				logger.NewField("order_id", c.orderID),
			)

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Info("websocket client disconnected",
				logger.NewField("client_count", count),
			)

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				if c.orderID != 0 && c.orderID != msg.orderID {
					continue
				}
				select {
				case c.send <- msg.payload:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast ставит сообщение в очередь рассылки. false - очередь переполнена, сообщение потеряно.
func (h *Hub) Broadcast(orderID int64, messageType string, data any) bool {
	payload, err := json.Marshal(Message{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.log.Error("marshal websocket message", logger.NewField("error", err))
		return false
	}

	select {
	case h.broadcast <- envelope{orderID: orderID, payload: payload}:
		return true
	default:
		h.log.Warn("broadcast queue is full, dropping message",
			logger.NewField("order_id", orderID),
		)
		return false
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderID int64
	if raw := r.URL.Query().Get(orderIDQueryParam); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, `{"error":"orderId must be a positive integer"}`, http.StatusBadRequest)
			return
		}
		orderID = id
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.log.Warn("websocket upgrade failed", logger.NewField("error", err))
		return
	}

	c := &client{
		conn:    conn,
		send:    make(chan []byte, clientBuffer),
		orderID: orderID,
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	case <-r.Context().Done():
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

// readPump читает только служебные кадры, входящие сообщения игнорируются.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", logger.NewField("error", err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
