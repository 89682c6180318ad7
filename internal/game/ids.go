package game

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Room codes are read aloud, so the alphabet drops 0/O/1/I.
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const roomCodeLength = 6

// NewRoomCode generates a 6-character human-shareable room code.
func NewRoomCode() string {
	var b strings.Builder
	b.Grow(roomCodeLength)
	for i := 0; i < roomCodeLength; i++ {
		b.WriteByte(roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))])
	}
	return b.String()
}

// NewID generates an opaque id for games, players and concepts.
func NewID() string {
	return uuid.New().String()
}
