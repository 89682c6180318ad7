package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"signaldraft/internal/domain"
	"signaldraft/internal/service"
)

type stubAPI struct {
	game    *domain.Game
	actions []service.Action
	err     error
}

func (s *stubAPI) GetGame(context.Context, string) (*domain.Game, error) {
	return s.game, s.err
}

func (s *stubAPI) PerformAction(_ context.Context, a service.Action) (*domain.Game, error) {
	s.actions = append(s.actions, a)
	return s.game, s.err
}

func recvMessage(t *testing.T, c *Client) serverMessage {
	t.Helper()
	select {
	case raw := <-c.Send:
		var msg serverMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal queued frame: %v", err)
		}
		return msg
	default:
		t.Fatal("no frame queued")
		return serverMessage{}
	}
}

func testClient(api *stubAPI) *Client {
	return &Client{
		RoomCode: "ABC234",
		PlayerID: "p1",
		Send:     make(chan []byte, 16),
		api:      api,
		Done:     make(chan struct{}),
	}
}

func TestHandleMessageAction(t *testing.T) {
	api := &stubAPI{game: &domain.Game{RoomCode: "ABC234"}}
	c := testClient(api)

	c.handleMessage(context.Background(), []byte(`{"type":"action","action":{"type":"SET_READY","payload":{"ready":true}}}`))

	if len(api.actions) != 1 {
		t.Fatalf("dispatched %d actions; want 1", len(api.actions))
	}
	a := api.actions[0]
	if a.RoomCode != "ABC234" {
		t.Errorf("roomCode = %q; want the connection's room", a.RoomCode)
	}
	if a.PlayerID != "p1" {
		t.Errorf("playerId = %q; want the connection's seat", a.PlayerID)
	}
}

func TestHandleMessageActionError(t *testing.T) {
	api := &stubAPI{err: errors.New("wrong phase")}
	c := testClient(api)

	c.handleMessage(context.Background(), []byte(`{"type":"action","action":{"type":"START_GAME"}}`))

	if msg := recvMessage(t, c); msg.Type != "error" {
		t.Fatalf("frame type = %q; want error", msg.Type)
	}
}

func TestHandleMessageSync(t *testing.T) {
	api := &stubAPI{game: &domain.Game{RoomCode: "ABC234", Phase: domain.PhaseScoring}}
	c := testClient(api)

	c.handleMessage(context.Background(), []byte(`{"type":"sync"}`))

	msg := recvMessage(t, c)
	if msg.Type != "game:state-update" {
		t.Fatalf("frame type = %q; want game:state-update", msg.Type)
	}
}

func TestHandleMessageMalformed(t *testing.T) {
	c := testClient(&stubAPI{})

	c.handleMessage(context.Background(), []byte(`{broken`))
	if msg := recvMessage(t, c); msg.Type != "error" {
		t.Fatalf("frame type = %q; want error", msg.Type)
	}

	c.handleMessage(context.Background(), []byte(`{"type":"teleport"}`))
	if msg := recvMessage(t, c); msg.Type != "error" {
		t.Fatalf("frame type = %q; want error for unknown type", msg.Type)
	}

	c.handleMessage(context.Background(), []byte(`{"type":"action"}`))
	if msg := recvMessage(t, c); msg.Type != "error" {
		t.Fatalf("frame type = %q; want error for missing action", msg.Type)
	}
}

// A connection to a room that cannot be loaded must get an error frame and a
// clean close right away, without waiting out a ping interval.
func TestRunClosesPromptlyOnMissingGame(t *testing.T) {
	api := &stubAPI{err: errors.New("game not found")}
	finished := make(chan *Client, 1)

	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient("NOROOM", "p1", conn, api, nil)
		c.Run(context.Background())
		finished <- c
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var sawError bool
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				t.Fatalf("connection did not close cleanly: %v", err)
			}
			break
		}
		var msg serverMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal frame: %v", err)
		}
		if msg.Type == "error" {
			sawError = true
		}
	}
	if !sawError {
		t.Errorf("no error frame before close")
	}

	select {
	case c := <-finished:
		select {
		case <-c.Done:
		default:
			t.Errorf("Done still open after Run returned")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return")
	}
}
