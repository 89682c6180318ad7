package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"signaldraft/internal/domain"
	"signaldraft/internal/pubsub"
	"signaldraft/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// GameAPI is the slice of the game service the sync adapter needs.
type GameAPI interface {
	GetGame(ctx context.Context, roomCode string) (*domain.Game, error)
	PerformAction(ctx context.Context, a service.Action) (*domain.Game, error)
}

// Subscriber delivers room events published through the notification channel.
type Subscriber interface {
	Subscribe(ctx context.Context, roomCode string) (<-chan pubsub.Event, func())
}

type Client struct {
	RoomCode string
	PlayerID string
	Conn     *websocket.Conn
	Send     chan []byte

	api  GameAPI
	subs Subscriber
	Done chan struct{}
}

// inbound frame from the browser
type clientMessage struct {
	Type   string          `json:"type"`
	Action *service.Action `json:"action,omitempty"`
}

// outbound frame to the browser
type serverMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func NewClient(roomCode, playerID string, conn *websocket.Conn, api GameAPI, subs Subscriber) *Client {
	return &Client{
		RoomCode: roomCode,
		PlayerID: playerID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		api:      api,
		subs:     subs,
		Done:     make(chan struct{}),
	}
}

func (c *Client) Run(ctx context.Context) {
	go c.writePump()

	c.queue(serverMessage{Type: "ready"})

	// full authoritative state first so the client never renders from a diff
	if g, err := c.api.GetGame(ctx, c.RoomCode); err == nil {
		c.queue(serverMessage{Type: pubsub.EvStateUpdate, Data: g})
	} else {
		log.Printf("ws: initial state load failed room=%s: %v", c.RoomCode, err)
		c.queue(serverMessage{Type: "error", Data: map[string]string{"error": "game not found"}})
		// closing Send lets the pump drain the error frame, send a close
		// frame, and exit instead of idling until the next ping
		close(c.Send)
		close(c.Done)
		return
	}

	events, cancel := c.subs.Subscribe(ctx, c.RoomCode)
	defer cancel()
	go c.forwardEvents(ctx, events)

	go c.readPump(ctx)

	<-c.Done
}

// forwardEvents relays published room events until the channel closes.
// State-update notifications are a wake-up signal, not a data source: the
// adapter refetches the authoritative session and pushes that, so a lost or
// reordered notification can never leave the client on stale state for
// longer than one missed wake-up.
func (c *Client) forwardEvents(ctx context.Context, events <-chan pubsub.Event) {
	for ev := range events {
		var msg serverMessage
		if ev.Name == pubsub.EvStateUpdate {
			g, err := c.api.GetGame(ctx, c.RoomCode)
			if err != nil {
				log.Printf("ws: refetch on state update failed room=%s: %v", c.RoomCode, err)
				continue
			}
			msg = serverMessage{Type: pubsub.EvStateUpdate, Data: g}
		} else {
			msg = serverMessage{Type: ev.Name, Data: ev.Data}
		}

		raw, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		select {
		case c.Send <- raw:
		case <-c.Done:
			return
		default:
			// slow consumer, drop the event; the next state-update resyncs it
			log.Printf("ws: dropped event %s for player=%s (send buffer full)", ev.Name, c.PlayerID)
		}
	}
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.disconnect(ctx)
		close(c.Done)
	}()

	c.Conn.SetReadLimit(8192)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read error player=%s: %v", c.PlayerID, err)
			}
			break
		}
		c.handleMessage(ctx, msg)
	}
}

func (c *Client) handleMessage(ctx context.Context, raw []byte) {
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.queue(serverMessage{Type: "error", Data: map[string]string{"error": "malformed message"}})
		return
	}

	switch msg.Type {
	case "action":
		if msg.Action == nil {
			c.queue(serverMessage{Type: "error", Data: map[string]string{"error": "missing action"}})
			return
		}
		a := *msg.Action
		a.RoomCode = c.RoomCode
		if a.PlayerID == "" {
			a.PlayerID = c.PlayerID
		}
		if _, err := c.api.PerformAction(ctx, a); err != nil {
			c.queue(serverMessage{Type: "error", Data: map[string]string{"error": err.Error()}})
		}
	case "sync":
		g, err := c.api.GetGame(ctx, c.RoomCode)
		if err != nil {
			c.queue(serverMessage{Type: "error", Data: map[string]string{"error": "game not found"}})
			return
		}
		c.queue(serverMessage{Type: pubsub.EvStateUpdate, Data: g})
	case "ping":
		c.queue(serverMessage{Type: "pong"})
	default:
		c.queue(serverMessage{Type: "error", Data: map[string]string{"error": "unknown message type"}})
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) queue(msg serverMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.Send <- raw:
	case <-time.After(500 * time.Millisecond):
		log.Printf("ws: timeout queuing %s for player=%s", msg.Type, c.PlayerID)
	}
}

// disconnect marks the player as away so locked-pick counting skips them.
func (c *Client) disconnect(ctx context.Context) {
	if c.PlayerID != "" {
		_, err := c.api.PerformAction(ctx, service.Action{
			Type:     service.ActionPlayerLeave,
			PlayerID: c.PlayerID,
			RoomCode: c.RoomCode,
		})
		if err != nil {
			log.Printf("ws: leave on disconnect failed player=%s: %v", c.PlayerID, err)
		}
	}
	_ = c.Conn.Close()
}
