package game

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not in game")
	ErrNotHost           = errors.New("host privilege required")
	ErrInvalidTransition = errors.New("invalid phase transition")

	ErrGameFull            = errors.New("game is full")
	ErrJoinWindowClosed    = errors.New("cannot join game after round 1")
	ErrNotEnoughPlayers    = errors.New("need at least 2 players to start")
	ErrWrongPhase          = errors.New("action not allowed in current phase")
	ErrCardNotInHand       = errors.New("card not in player hand")
	ErrPickLimitExceeded   = errors.New("pick limit exceeded")
	ErrPicksIncomplete     = errors.New("not enough picks to lock")
	ErrConceptLimitReached = errors.New("maximum concepts reached")
	ErrConceptNotFound     = errors.New("concept not found")
	ErrDuplicateScore      = errors.New("already scored this concept")
	ErrCatalogTooSmall     = errors.New("card catalog too small for configured player count")

	ErrVersionConflict = errors.New("session modified concurrently")
)

// Kind - stable error category surfaced to clients
type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindForbidden          Kind = "Forbidden"
	KindInvalidTransition  Kind = "InvalidTransition"
	KindPreconditionFailed Kind = "PreconditionFailed"
	KindConflict           Kind = "Conflict"
	KindInternal           Kind = "Internal"
)

// KindOf maps a domain error to its category.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrGameNotFound), errors.Is(err, ErrConceptNotFound):
		return KindNotFound
	case errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrNotHost):
		return KindForbidden
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrVersionConflict):
		return KindConflict
	case errors.Is(err, ErrGameFull),
		errors.Is(err, ErrJoinWindowClosed),
		errors.Is(err, ErrNotEnoughPlayers),
		errors.Is(err, ErrWrongPhase),
		errors.Is(err, ErrCardNotInHand),
		errors.Is(err, ErrPickLimitExceeded),
		errors.Is(err, ErrPicksIncomplete),
		errors.Is(err, ErrConceptLimitReached),
		errors.Is(err, ErrDuplicateScore),
		errors.Is(err, ErrCatalogTooSmall):
		return KindPreconditionFailed
	}
	return KindInternal
}
