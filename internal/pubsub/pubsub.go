package pubsub

import (
	"context"
	"encoding/json"

	"signaldraft/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	redis "github.com/redis/go-redis/v9"
)

// Event names published on a room's channel. StateUpdate is emitted for
// every mutating command and is the one signal clients can rely on; the
// rest are informational domain events.
const (
	EvStateUpdate      = "game:state-update"
	EvPlayerJoined     = "player:joined"
	EvPlayerLeft       = "player:left"
	EvPlayerReady      = "player:ready"
	EvDraftPick        = "draft:pick"
	EvDraftLocked      = "draft:locked"
	EvConceptSubmitted = "concept:submitted"
	EvScoreSubmitted   = "score:submitted"
	EvPhaseChanged     = "phase:changed"
)

var publishFailures = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "game_publish_failures_total",
	Help: "Notifications that could not be published after a successful persist",
})

func init() {
	prometheus.MustRegister(publishFailures)
}

// ChannelName returns the pub/sub topic for a room.
func ChannelName(roomCode string) string {
	return "game-" + roomCode
}

// Event is one notification on a room channel.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Notifier fans out session notifications over redis pub/sub. Delivery is
// fire-and-forget; clients self-heal by refetching authoritative state.
type Notifier struct {
	rdb *redis.Client
}

func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Publish sends one event to every subscriber of the room's channel. A
// failed publish is logged and counted, never propagated: the persisted
// session is already authoritative.
func (n *Notifier) Publish(ctx context.Context, roomCode, event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		publishFailures.Inc()
		logger.Error("notification payload not serializable", "event", event, "error", err)
		return
	}
	msg, _ := json.Marshal(Event{Name: event, Data: raw})
	if err := n.rdb.Publish(ctx, ChannelName(roomCode), msg).Err(); err != nil {
		publishFailures.Inc()
		logger.Warn("notification publish failed", "room", roomCode, "event", event, "error", err)
	}
}

// Subscribe opens a subscription to the room's channel. The returned channel
// closes when ctx is done or the subscription drops.
func (n *Notifier) Subscribe(ctx context.Context, roomCode string) (<-chan Event, func()) {
	sub := n.rdb.Subscribe(ctx, ChannelName(roomCode))
	out := make(chan Event, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Warn("dropping malformed notification", "room", roomCode, "error", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
