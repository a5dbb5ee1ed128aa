package entities

import (
	"strings"

	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
)

// Game is registry bookkeeping: an id, a display name, and (via the
// registry index) the campaigns it owns. A campaign belongs to exactly one
// game for its lifetime.
type Game struct {
	ID   string
	Name string
}

func NewGame(id, name string) (Game, error) {
	if strings.TrimSpace(id) == "" {
		return Game{}, domainerrors.ErrInvalidGameID
	}
	return Game{ID: id, Name: strings.TrimSpace(name)}, nil
}
