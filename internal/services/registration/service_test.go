package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage/memory"
	"github.com/torneokills/torneo/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage    *testutil.FaultyStorage
	service    *Service
	tournament *model.Tournament
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = testutil.NewFaultyStorage(memory.New())
	s.service = New(s.storage, testutil.NopLogger())

	s.tournament = &model.Tournament{Name: "Copa Free Fire"}
	s.Require().NoError(s.storage.CreateTournament(s.ctx, s.tournament))
}

func (s *ServiceSuite) input() Input {
	return Input{
		FullName:     "  Ana Pérez ",
		GameID:       "123456789",
		Email:        "ana@example.com",
		NationalID:   "V-12345678",
		Phone:        "0414-1234567",
		Bank:         "Banesco",
		TournamentID: s.tournament.ID,
	}
}

func (s *ServiceSuite) TestRegisterCreatesPlayerAndEnrollment() {
	result, err := s.service.Register(s.ctx, s.input())
	s.Require().NoError(err)

	s.NotZero(result.Player.ID)
	s.Equal("Ana Pérez", result.Player.FullName)
	s.Equal(result.Player.ID, result.Enrollment.PlayerID)
	s.Equal(s.tournament.ID, result.Enrollment.TournamentID)
	s.False(result.Enrollment.PaymentVerified)
	s.Equal(0, result.Enrollment.Kills)

	pending, err := s.storage.ListEnrollments(s.ctx, model.PendingPayment())
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal("Ana Pérez", pending[0].Player.FullName)
	s.Equal("Copa Free Fire", pending[0].Tournament.Name)
}

func (s *ServiceSuite) TestRegisterPlayerFailure() {
	s.storage.CreatePlayerErr = errors.New("connection refused")

	_, err := s.service.Register(s.ctx, s.input())

	var stepErr *StepError
	s.Require().ErrorAs(err, &stepErr)
	s.Equal(StepPlayer, stepErr.Step)
	s.Nil(stepErr.Player)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *ServiceSuite) TestRegisterUnknownTournamentOrphansPlayer() {
	in := s.input()
	in.TournamentID = 999

	_, err := s.service.Register(s.ctx, in)

	var stepErr *StepError
	s.Require().ErrorAs(err, &stepErr)
	s.Equal(StepEnrollment, stepErr.Step)
	s.Require().NotNil(stepErr.Player)
	s.ErrorIs(err, model.ErrTournamentNotFound)

	// The player written in the first step stays in the store
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(stepErr.Player.ID, players[0].ID)

	enrollments, err := s.storage.ListEnrollments(s.ctx, model.EnrollmentFilter{})
	s.Require().NoError(err)
	s.Empty(enrollments)
}

func (s *ServiceSuite) TestRegisterDuplicatesAllowed() {
	_, err := s.service.Register(s.ctx, s.input())
	s.Require().NoError(err)
	_, err = s.service.Register(s.ctx, s.input())
	s.Require().NoError(err)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func TestParseTournamentID(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"3", 3},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"1.5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTournamentID(tt.raw), "input %q", tt.raw)
	}
}
