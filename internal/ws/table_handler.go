package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/cuesim/internal/auth"
	"github.com/playmatatu/cuesim/internal/input"
	"github.com/playmatatu/cuesim/internal/session"
)

type PointerData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ButtonData struct {
	Down bool `json:"down"`
}

type NudgeData struct {
	Dir  string `json:"dir"`
	Down bool   `json:"down"`
}

type PlaceCueBallData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TableFinder looks up live tables.
type TableFinder interface {
	Get(id string) (*session.Session, error)
}

// Handler upgrades table connections.
type Handler struct {
	hub      *Hub
	tables   TableFinder
	secret   string
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket endpoint. checkOrigin nil accepts every origin.
func NewHandler(hub *Hub, tables TableFinder, secret string, checkOrigin func(*http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Handler{
		hub:    hub,
		tables: tables,
		secret: secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeTable handles GET /tables/:id/ws?token=...
func (h *Handler) ServeTable(c *gin.Context) {
	tableID := c.Param("id")
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	claimed, err := auth.ParseTableToken(h.secret, token)
	if err != nil || claimed != tableID {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid table token"})
		return
	}

	table, err := h.tables.Get(tableID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	events, unsub := table.Subscribe(sendBuffer)
	client := &Client{
		hub:     h.hub,
		conn:    conn,
		id:      uuid.NewString(),
		tableID: tableID,
		table:   table,
		send:    make(chan []byte, sendBuffer),
		events:  events,
		unsub:   unsub,
	}

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		unsub()
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.leave()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] unexpected close for client %s: %v", c.id, err)
			}
			return
		}

		var msg inMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("Invalid message")
			continue
		}
		c.handleMessage(msg)
	}
}

// handleMessage feeds one client message into the table.
func (c *Client) handleMessage(msg inMessage) {
	switch msg.Type {
	case "pointer":
		var data PointerData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid pointer data")
			return
		}
		c.table.Pointer(data.X, data.Y)

	case "button":
		var data ButtonData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid button data")
			return
		}
		c.table.Button(data.Down)

	case "nudge":
		var data NudgeData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid nudge data")
			return
		}
		dir, err := input.ParseDir(data.Dir)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.table.Nudge(dir, data.Down)

	case "toggle_hit_line":
		c.table.ToggleHitLine()

	case "place_cue_ball":
		var data PlaceCueBallData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid placement data")
			return
		}
		if err := c.table.PlaceCueBall(data.X, data.Y); err != nil {
			c.sendError(err.Error())
			return
		}
		c.hub.BroadcastToTable(c.tableID, outMessage{Type: "ball_placed", Data: data})

	case "get_state":
		c.sendMessage(outMessage{Type: "state", Data: c.table.Snapshot()})

	default:
		c.sendError("Unknown message type")
	}
}
