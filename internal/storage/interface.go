package storage

import (
	"context"

	"github.com/torneokills/torneo/internal/model"
)

// Storage defines the interface for data persistence.
// Create operations fill in the generated ID and CreatedAt on the passed value.
// There are no multi-statement transactions.
type Storage interface {
	// Tournament operations
	CreateTournament(ctx context.Context, tournament *model.Tournament) error
	ListTournaments(ctx context.Context) ([]model.Tournament, error)

	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id int64) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// Enrollment operations
	CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error
	GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error)
	ListEnrollments(ctx context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentDetail, error)
	SetPaymentVerified(ctx context.Context, id int64) error
	SetKills(ctx context.Context, id int64, kills int) error

	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
	Close() error
}
