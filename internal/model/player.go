package model

import "time"

// Player is a registered participant. Rows are never deduplicated: every
// registration submission creates a new player.
type Player struct {
	ID         int64
	FullName   string
	GameID     string // in-game identifier (cod_id)
	Email      string
	NationalID string // cedula
	Phone      string
	Bank       string
	CreatedAt  time.Time
}
