package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"signaldraft/internal/domain"
	"signaldraft/internal/game"
	"signaldraft/internal/logger"
	"signaldraft/internal/pubsub"

	"github.com/prometheus/client_golang/prometheus"
)

// ActionType - commands accepted by PerformAction
type ActionType string

const (
	ActionStartGame     ActionType = "START_GAME"
	ActionDraftCards    ActionType = "DRAFT_CARDS"
	ActionLockPicks     ActionType = "LOCK_PICKS"
	ActionAdvanceRound  ActionType = "ADVANCE_ROUND"
	ActionSubmitConcept ActionType = "SUBMIT_CONCEPT"
	ActionSubmitScore   ActionType = "SUBMIT_SCORE"
	ActionEndGame       ActionType = "END_GAME"
	ActionPlayerLeave   ActionType = "PLAYER_LEAVE"
	ActionSetReady      ActionType = "SET_READY"
)

// Action is one inbound player/host command.
type Action struct {
	Type     ActionType      `json:"type"`
	PlayerID string          `json:"playerId"`
	RoomCode string          `json:"roomCode"`
	Payload  json.RawMessage `json:"payload"`
}

// GameStore is the session persistence contract (see internal/store).
type GameStore interface {
	Get(ctx context.Context, roomCode string) (*domain.Game, error)
	Create(ctx context.Context, g *domain.Game) error
	Save(ctx context.Context, g *domain.Game) error
	Delete(ctx context.Context, roomCode string) error
	Touch(ctx context.Context, roomCode string) error
}

// Notifier is the fan-out contract (see internal/pubsub).
type Notifier interface {
	Publish(ctx context.Context, roomCode, event string, data any)
}

// CatalogProvider supplies the card pool at session creation.
type CatalogProvider interface {
	CardPool(ctx context.Context) *domain.CardDeck
}

// Archiver stores finished games durably. Optional.
type Archiver interface {
	Record(ctx context.Context, g *domain.Game, ranked []domain.StartupConcept) error
}

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_commands_total",
			Help: "Game commands processed, by type and outcome",
		},
		[]string{"type", "outcome"},
	)
	saveConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "game_save_conflicts_total",
		Help: "Optimistic-concurrency conflicts on session save",
	})
)

func init() {
	prometheus.MustRegister(commandsTotal)
	prometheus.MustRegister(saveConflicts)
}

// How many times a command is replayed after losing a save race.
const maxSaveRetries = 3

// ErrInvalidPayload - the command payload did not decode
var ErrInvalidPayload = errors.New("invalid action payload")

// GameService is the action dispatcher: it validates a command against the
// loaded session, applies the state-machine operation, persists the result
// and fans out notifications. Persistence happens-before publication, so a
// client waking up on a notification always refetches at least this
// command's effect.
type GameService struct {
	store    GameStore
	notifier Notifier
	catalog  CatalogProvider
	archive  Archiver
}

func NewGameService(store GameStore, notifier Notifier, catalog CatalogProvider, archive Archiver) *GameService {
	return &GameService{store: store, notifier: notifier, catalog: catalog, archive: archive}
}

// CreateGame builds and persists a fresh session, retrying on the unlikely
// room-code collision.
func (s *GameService) CreateGame(ctx context.Context, hostName string, override *game.SettingsOverride) (*domain.Game, error) {
	deck := s.catalog.CardPool(ctx)

	for attempt := 0; attempt < maxSaveRetries; attempt++ {
		g, err := game.CreateGame(hostName, override, deck)
		if err != nil {
			return nil, err
		}
		if err := s.store.Create(ctx, g); err != nil {
			if errors.Is(err, game.ErrVersionConflict) {
				continue // room code taken, roll a new one
			}
			return nil, err
		}
		s.notifier.Publish(ctx, g.RoomCode, pubsub.EvStateUpdate, stateUpdate(g, "CREATE_GAME"))
		return g, nil
	}
	return nil, fmt.Errorf("could not allocate a room code")
}

// JoinGame adds a player to an existing session and returns the session
// along with the new player's id.
func (s *GameService) JoinGame(ctx context.Context, roomCode, playerName string) (*domain.Game, string, error) {
	var playerID string
	g, err := s.update(ctx, roomCode, func(g *domain.Game) ([]event, error) {
		id, err := game.AddPlayer(g, playerName)
		if err != nil {
			return nil, err
		}
		playerID = id
		return []event{{pubsub.EvPlayerJoined, map[string]any{"playerId": id, "playerName": playerName}}}, nil
	}, "PLAYER_JOINED")
	if err != nil {
		return nil, "", err
	}
	return g, playerID, nil
}

// GetGame returns the authoritative session and keeps it alive.
func (s *GameService) GetGame(ctx context.Context, roomCode string) (*domain.Game, error) {
	g, err := s.store.Get(ctx, roomCode)
	if err != nil {
		return nil, err
	}
	if err := s.store.Touch(ctx, roomCode); err != nil {
		logger.Warn("session ttl refresh failed", "room", roomCode, "error", err)
	}
	return g, nil
}

// DeleteGame removes a session outright. Administrative cleanup only;
// normal sessions just expire.
func (s *GameService) DeleteGame(ctx context.Context, roomCode string) error {
	return s.store.Delete(ctx, roomCode)
}

// PerformAction runs one command end to end. Domain errors come back to the
// caller with the session unchanged; save races are replayed from the load
// step up to maxSaveRetries times.
func (s *GameService) PerformAction(ctx context.Context, a Action) (*domain.Game, error) {
	var ended bool
	g, err := s.update(ctx, a.RoomCode, func(g *domain.Game) ([]event, error) {
		before := g.Phase
		events, err := s.apply(g, a)
		ended = err == nil && before != domain.PhaseEnded && g.Phase == domain.PhaseEnded
		return events, err
	}, string(a.Type))
	if err != nil {
		commandsTotal.WithLabelValues(string(a.Type), "error").Inc()
		return nil, err
	}
	commandsTotal.WithLabelValues(string(a.Type), "ok").Inc()

	if ended {
		s.archiveGame(g)
	}
	return g, nil
}

// event is a domain notification queued during mutation and published only
// after a successful persist.
type event struct {
	name string
	data any
}

// update is the shared load-mutate-persist-notify sequence.
func (s *GameService) update(ctx context.Context, roomCode string, mutate func(*domain.Game) ([]event, error), trigger string) (*domain.Game, error) {
	for attempt := 0; ; attempt++ {
		g, err := s.store.Get(ctx, roomCode)
		if err != nil {
			return nil, err
		}

		events, err := mutate(g)
		if err != nil {
			return nil, err
		}

		if err := s.store.Save(ctx, g); err != nil {
			if errors.Is(err, game.ErrVersionConflict) && attempt < maxSaveRetries-1 {
				saveConflicts.Inc()
				continue
			}
			return nil, err
		}

		for _, ev := range events {
			s.notifier.Publish(ctx, roomCode, ev.name, ev.data)
		}
		s.notifier.Publish(ctx, roomCode, pubsub.EvStateUpdate, stateUpdate(g, trigger))
		return g, nil
	}
}

func stateUpdate(g *domain.Game, trigger string) map[string]any {
	connected := 0
	for _, p := range g.Players {
		if p.IsConnected {
			connected++
		}
	}
	return map[string]any{
		"phase":            g.Phase,
		"trigger":          trigger,
		"connectedPlayers": connected,
	}
}

type draftPayload struct {
	CardID   string `json:"cardId"`
	Selected bool   `json:"selected"`
}

type scorePayload struct {
	ConceptID string `json:"conceptId"`
	game.ScoreInput
}

type readyPayload struct {
	Ready bool `json:"ready"`
}

// apply validates authorization and preconditions for one command and runs
// the matching state-machine operations, returning the domain events to
// publish once the session is persisted.
func (s *GameService) apply(g *domain.Game, a Action) ([]event, error) {
	player := g.Player(a.PlayerID)
	if player == nil {
		return nil, game.ErrPlayerNotFound
	}

	switch a.Type {
	case ActionStartGame:
		if !player.IsHost {
			return nil, game.ErrNotHost
		}
		if g.Phase != domain.PhaseLobby {
			return nil, game.ErrWrongPhase
		}
		if len(g.Players) < 2 {
			return nil, game.ErrNotEnoughPlayers
		}
		if err := game.Transition(g, domain.PhaseTrendDraft); err != nil {
			return nil, err
		}
		return []event{phaseChanged(g)}, nil

	case ActionDraftCards:
		var p draftPayload
		if err := json.Unmarshal(a.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := game.SelectCard(g, a.PlayerID, p.CardID, p.Selected); err != nil {
			return nil, err
		}
		return []event{{pubsub.EvDraftPick, map[string]any{
			"playerId": a.PlayerID, "cardId": p.CardID, "selected": p.Selected,
		}}}, nil

	case ActionLockPicks:
		if err := game.LockPicks(g, a.PlayerID); err != nil {
			return nil, err
		}
		events := []event{{pubsub.EvDraftLocked, map[string]any{"playerId": a.PlayerID}}}
		if game.AllPlayersLocked(g) {
			if next, ok := game.NextPhase(g.Phase); ok {
				if err := game.Transition(g, next); err != nil {
					return nil, err
				}
				events = append(events, phaseChanged(g))
			}
		}
		return events, nil

	case ActionAdvanceRound:
		if !player.IsHost {
			return nil, game.ErrNotHost
		}
		next, ok := game.NextPhase(g.Phase)
		if !ok {
			return nil, game.ErrInvalidTransition
		}
		if err := game.Transition(g, next); err != nil {
			return nil, err
		}
		if g.Phase == domain.PhaseSummary {
			game.CalculateResults(g)
		}
		return []event{phaseChanged(g)}, nil

	case ActionSubmitConcept:
		var in game.ConceptInput
		if err := json.Unmarshal(a.Payload, &in); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if _, err := game.SubmitConcept(g, a.PlayerID, in); err != nil {
			return nil, err
		}
		count := 0
		for i := range g.Concepts {
			if g.Concepts[i].OwnerPlayerID == a.PlayerID {
				count++
			}
		}
		return []event{{pubsub.EvConceptSubmitted, map[string]any{
			"playerId": a.PlayerID, "conceptCount": count,
		}}}, nil

	case ActionSubmitScore:
		var p scorePayload
		if err := json.Unmarshal(a.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := game.SubmitScore(g, a.PlayerID, p.ConceptID, p.ScoreInput); err != nil {
			return nil, err
		}
		events := []event{{pubsub.EvScoreSubmitted, map[string]any{
			"playerId": a.PlayerID, "conceptId": p.ConceptID,
		}}}
		if game.AllScoringComplete(g) {
			if err := game.Transition(g, domain.PhaseSummary); err != nil {
				return nil, err
			}
			game.CalculateResults(g)
			events = append(events, phaseChanged(g))
		}
		return events, nil

	case ActionEndGame:
		if !player.IsHost {
			return nil, game.ErrNotHost
		}
		if g.Phase != domain.PhaseSummary {
			return nil, game.ErrWrongPhase
		}
		if err := game.Transition(g, domain.PhaseEnded); err != nil {
			return nil, err
		}
		return []event{phaseChanged(g)}, nil

	case ActionPlayerLeave:
		if err := game.RemovePlayer(g, a.PlayerID); err != nil {
			return nil, err
		}
		return []event{{pubsub.EvPlayerLeft, map[string]any{"playerId": a.PlayerID}}}, nil

	case ActionSetReady:
		var p readyPayload
		if err := json.Unmarshal(a.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := game.SetPlayerReady(g, a.PlayerID, p.Ready); err != nil {
			return nil, err
		}
		return []event{{pubsub.EvPlayerReady, map[string]any{
			"playerId": a.PlayerID, "ready": p.Ready,
		}}}, nil
	}

	return nil, fmt.Errorf("unknown action type: %s", a.Type)
}

func phaseChanged(g *domain.Game) event {
	return event{pubsub.EvPhaseChanged, map[string]any{"newPhase": g.Phase}}
}

// archiveGame records the final standings in the background, like any other
// best-effort post-game bookkeeping.
func (s *GameService) archiveGame(g *domain.Game) {
	if s.archive == nil {
		return
	}
	snapshot := *g
	ranked := game.RankedConcepts(&snapshot)
	go func() {
		if err := s.archive.Record(context.Background(), &snapshot, ranked); err != nil {
			logger.Warn("game archive failed", "room", snapshot.RoomCode, "error", err)
		}
	}()
}
