// Package live pushes state snapshots to connected clients over WebSocket,
// so a second tab or an overlay sees purchases and event spawns without
// polling. Subscriptions are scoped per session id.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type message struct {
	session string
	payload []byte
}

// Hub fans snapshots out to the clients subscribed to each session. All
// bookkeeping happens on the Run goroutine; the channels are the only way in.
type Hub struct {
	sessions   map[string]map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			clients, ok := h.sessions[c.session]
			if !ok {
				clients = make(map[*Client]bool)
				h.sessions[c.session] = clients
			}
			clients[c] = true
		case c := <-h.unregister:
			if clients, ok := h.sessions[c.session]; ok {
				if _, ok := clients[c]; ok {
					delete(clients, c)
					close(c.send)
					if len(clients) == 0 {
						delete(h.sessions, c.session)
					}
				}
			}
		case m := <-h.broadcast:
			for c := range h.sessions[m.session] {
				select {
				case c.send <- m.payload:
				default:
					// Slow consumer, drop it.
					delete(h.sessions[m.session], c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast queues a JSON snapshot for every client on the session. Never
// blocks the caller; if the hub queue is full the snapshot is dropped, the
// next action will push a fresher one anyway.
func (h *Hub) Broadcast(session string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("live: marshal snapshot: %v", err)
		}
		return
	}
	select {
	case h.broadcast <- message{session: session, payload: b}:
	default:
	}
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session string
}

// ServeWS upgrades the request and registers the client under its session.
func (h *Hub) ServeWS(session string, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("live: upgrade: %v", err)
		}
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan []byte, 16), session: session}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// readPump discards inbound frames; the socket is one-way. It exists to
// service pongs and to notice the close.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
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
