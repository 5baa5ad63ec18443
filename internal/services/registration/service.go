package registration

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// Step identifies which write of a registration failed
type Step string

const (
	StepPlayer     Step = "player"
	StepEnrollment Step = "enrollment"
)

// StepError reports a failed registration step. When Step is StepEnrollment
// the player has already been written and Player is set.
type StepError struct {
	Step   Step
	Player *model.Player
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("registration %s step: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Input is the submitted entry form
type Input struct {
	FullName     string
	GameID       string
	Email        string
	NationalID   string
	Phone        string
	Bank         string
	TournamentID int64
}

// ParseTournamentID converts the form value. Anything unparsable becomes 0,
// which no store accepts as a tournament.
func ParseTournamentID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Result holds the rows written by a successful registration
type Result struct {
	Player     model.Player
	Enrollment model.Enrollment
}

// Service registers players into tournaments
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a registration service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Register writes the player and then the enrollment. The writes are not
// atomic: an enrollment failure leaves the player row behind.
func (s *Service) Register(ctx context.Context, in Input) (*Result, error) {
	player := &model.Player{
		FullName:   strings.TrimSpace(in.FullName),
		GameID:     strings.TrimSpace(in.GameID),
		Email:      strings.TrimSpace(in.Email),
		NationalID: strings.TrimSpace(in.NationalID),
		Phone:      strings.TrimSpace(in.Phone),
		Bank:       strings.TrimSpace(in.Bank),
	}
	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		s.logger.Error("failed to create player", "error", err)
		return nil, &StepError{Step: StepPlayer, Err: err}
	}

	enrollment := &model.Enrollment{
		PlayerID:     player.ID,
		TournamentID: in.TournamentID,
	}
	if err := s.storage.CreateEnrollment(ctx, enrollment); err != nil {
		s.logger.Error("failed to create enrollment",
			"player_id", player.ID,
			"tournament_id", in.TournamentID,
			"error", err,
		)
		return nil, &StepError{Step: StepEnrollment, Player: player, Err: err}
	}

	s.logger.Info("player registered",
		"player_id", player.ID,
		"enrollment_id", enrollment.ID,
		"tournament_id", enrollment.TournamentID,
	)

	return &Result{Player: *player, Enrollment: *enrollment}, nil
}
