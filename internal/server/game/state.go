package game

import (
	"time"

	"xiangqi/internal/game"
)

type GameState struct {
	ID        string
	Game      *game.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}
