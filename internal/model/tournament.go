package model

import "time"

// DefaultTournamentName is used when a tournament is created without a name
const DefaultTournamentName = "Torneo de Prueba"

// Tournament is an event players can enroll in
type Tournament struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
