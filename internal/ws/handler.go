package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/cuesim/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 4096
	sendBuffer = 256
)

// Client is one websocket connection attached to a table.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	id      string
	tableID string
	table   *session.Session

	send   chan []byte
	events <-chan session.Event
	unsub  func()
}

// Hub tracks connected clients by table.
type Hub struct {
	clients    map[string]*Client            // clientID -> Client
	rooms      map[string]map[string]*Client // tableID -> clientID -> Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run handles (un)registrations until ctx is done.
func (h *Hub) Run(ctx context.Context) error {
	log.Println("[WS] Hub started")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			log.Println("[WS] Hub stopped")
			return nil

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			if _, exists := h.rooms[client.tableID]; !exists {
				h.rooms[client.tableID] = make(map[string]*Client)
			}
			h.rooms[client.tableID][client.id] = client
			size := len(h.rooms[client.tableID])
			h.mu.Unlock()

			log.Printf("[WS] Client %s joined table %s (room_size=%d)", client.id, client.tableID, size)
			client.sendMessage(outMessage{Type: "frame", Data: client.table.Snapshot()})

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.id]; ok && cur == client {
				delete(h.clients, client.id)
				if room, exists := h.rooms[client.tableID]; exists {
					delete(room, client.id)
					if len(room) == 0 {
						delete(h.rooms, client.tableID)
					}
				}
				client.unsub()
				close(client.send)
				log.Printf("[WS] Client %s left table %s", client.id, client.tableID)
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		client.unsub()
		close(client.send)
		delete(h.clients, id)
	}
	h.rooms = make(map[string]map[string]*Client)
}

// RoomSize reports how many clients watch a table.
func (h *Hub) RoomSize(tableID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[tableID])
}

// BroadcastToTable sends a message to every client of a table.
func (h *Hub) BroadcastToTable(tableID string, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WS] Error marshaling message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[tableID] {
		select {
		case client.send <- data:
		default:
			log.Printf("[WS] Client %s send buffer full on table %s, dropping message", client.id, tableID)
		}
	}
}

type inMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outMessage struct {
	Type    string `json:"type"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// writePump owns all writes to the connection: table events, direct
// replies and pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				// table is gone; the read side sees the close
				c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "table closed"))
				return
			}
			if err := c.writeJSON(eventMessage(ev)); err != nil {
				log.Printf("[WS] write error for client %s: %v", c.id, err)
				return
			}

		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] write error for client %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for client %s: %v", c.id, err)
				return
			}
		}
	}
}

func (c *Client) writeJSON(msg outMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func eventMessage(ev session.Event) outMessage {
	switch ev.Type {
	case session.EventStrike:
		return outMessage{Type: ev.Type, Data: ev.Strike}
	default:
		return outMessage{Type: ev.Type, Data: ev.Snapshot}
	}
}

// sendMessage queues a direct reply. It never blocks the read pump.
func (c *Client) sendMessage(msg outMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WS] Error marshaling message: %v", err)
		return
	}

	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if c.hub.clients[c.id] != c {
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("[WS] Client %s send buffer full, dropping %s", c.id, msg.Type)
	}
}

// leave unregisters the client unless the hub has already stopped.
func (c *Client) leave() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

func (c *Client) sendError(message string) {
	c.sendMessage(outMessage{Type: "error", Message: message})
}
