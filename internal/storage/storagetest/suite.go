// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// Suite exercises a storage.Storage implementation.
// NewStorage is called before every test and must return an empty store.
type Suite struct {
	suite.Suite
	NewStorage func() storage.Storage

	storage storage.Storage
	ctx     context.Context
}

func (s *Suite) SetupTest() {
	s.storage = s.NewStorage()
	s.ctx = context.Background()
}

func (s *Suite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *Suite) createTournament(name string) *model.Tournament {
	t := &model.Tournament{Name: name}
	s.Require().NoError(s.storage.CreateTournament(s.ctx, t))
	return t
}

func (s *Suite) createPlayer(name string) *model.Player {
	p := &model.Player{
		FullName:   name,
		GameID:     name + "-id",
		Email:      name + "@example.com",
		NationalID: "V-" + name,
		Phone:      "0414-" + name,
		Bank:       "Banesco",
	}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, p))
	return p
}

func (s *Suite) enroll(player *model.Player, tournament *model.Tournament) *model.Enrollment {
	e := &model.Enrollment{PlayerID: player.ID, TournamentID: tournament.ID}
	s.Require().NoError(s.storage.CreateEnrollment(s.ctx, e))
	return e
}

// Tournament tests

func (s *Suite) TestCreateTournamentAssignsID() {
	first := s.createTournament("Copa 1")
	second := s.createTournament("Copa 2")

	s.NotZero(first.ID)
	s.NotEqual(first.ID, second.ID)
	s.False(first.CreatedAt.IsZero())
}

func (s *Suite) TestListTournaments() {
	s.createTournament("Copa 1")
	s.createTournament("Copa 2")

	tournaments, err := s.storage.ListTournaments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(tournaments, 2)
	s.Equal("Copa 1", tournaments[0].Name)
	s.Equal("Copa 2", tournaments[1].Name)
}

func (s *Suite) TestListTournamentsEmpty() {
	tournaments, err := s.storage.ListTournaments(s.ctx)
	s.Require().NoError(err)
	s.Empty(tournaments)
}

// Player tests

func (s *Suite) TestCreateAndGetPlayer() {
	created := s.createPlayer("ana")

	retrieved, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("ana", retrieved.FullName)
	s.Equal("ana-id", retrieved.GameID)
	s.Equal("ana@example.com", retrieved.Email)
	s.Equal("V-ana", retrieved.NationalID)
	s.Equal("0414-ana", retrieved.Phone)
	s.Equal("Banesco", retrieved.Bank)
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestDuplicatePlayersAreKept() {
	s.createPlayer("ana")
	s.createPlayer("ana")

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

// Enrollment tests

func (s *Suite) TestCreateEnrollmentDefaults() {
	enrollment := s.enroll(s.createPlayer("ana"), s.createTournament("Copa"))

	retrieved, err := s.storage.GetEnrollment(s.ctx, enrollment.ID)
	s.Require().NoError(err)
	s.False(retrieved.PaymentVerified)
	s.Equal(0, retrieved.Kills)
}

func (s *Suite) TestCreateEnrollmentUnknownTournament() {
	player := s.createPlayer("ana")

	err := s.storage.CreateEnrollment(s.ctx, &model.Enrollment{PlayerID: player.ID, TournamentID: 999})
	s.Error(err)

	// The player row stays behind
	_, err = s.storage.GetPlayer(s.ctx, player.ID)
	s.NoError(err)
}

func (s *Suite) TestGetEnrollmentNotFound() {
	_, err := s.storage.GetEnrollment(s.ctx, 999)
	s.ErrorIs(err, model.ErrEnrollmentNotFound)
}

func (s *Suite) TestListEnrollmentsEmbedsRelations() {
	tournament := s.createTournament("Copa")
	player := s.createPlayer("ana")
	s.enroll(player, tournament)

	details, err := s.storage.ListEnrollments(s.ctx, model.EnrollmentFilter{})
	s.Require().NoError(err)
	s.Require().Len(details, 1)
	s.Equal("ana", details[0].Player.FullName)
	s.Equal("0414-ana", details[0].Player.Phone)
	s.Equal("Copa", details[0].Tournament.Name)
}

func (s *Suite) TestListEnrollmentsFiltersByVerified() {
	tournament := s.createTournament("Copa")
	pending := s.enroll(s.createPlayer("ana"), tournament)
	verified := s.enroll(s.createPlayer("luis"), tournament)
	s.Require().NoError(s.storage.SetPaymentVerified(s.ctx, verified.ID))

	pendingRows, err := s.storage.ListEnrollments(s.ctx, model.PendingPayment())
	s.Require().NoError(err)
	s.Require().Len(pendingRows, 1)
	s.Equal(pending.ID, pendingRows[0].ID)

	verifiedRows, err := s.storage.ListEnrollments(s.ctx, model.VerifiedPayment())
	s.Require().NoError(err)
	s.Require().Len(verifiedRows, 1)
	s.Equal(verified.ID, verifiedRows[0].ID)
	s.True(verifiedRows[0].PaymentVerified)
}

func (s *Suite) TestListEnrollmentsWithKills() {
	tournament := s.createTournament("Copa")
	noKills := s.enroll(s.createPlayer("ana"), tournament)
	withKills := s.enroll(s.createPlayer("luis"), tournament)
	unverified := s.enroll(s.createPlayer("eva"), tournament)
	s.Require().NoError(s.storage.SetPaymentVerified(s.ctx, noKills.ID))
	s.Require().NoError(s.storage.SetPaymentVerified(s.ctx, withKills.ID))
	s.Require().NoError(s.storage.SetKills(s.ctx, withKills.ID, 7))
	s.Require().NoError(s.storage.SetKills(s.ctx, unverified.ID, 3))

	filter := model.VerifiedPayment()
	filter.WithKills = true
	rows, err := s.storage.ListEnrollments(s.ctx, filter)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(withKills.ID, rows[0].ID)
	s.Equal(7, rows[0].Kills)
}

func (s *Suite) TestListEnrollmentsOrderedByID() {
	tournament := s.createTournament("Copa")
	first := s.enroll(s.createPlayer("ana"), tournament)
	second := s.enroll(s.createPlayer("luis"), tournament)
	third := s.enroll(s.createPlayer("eva"), tournament)

	rows, err := s.storage.ListEnrollments(s.ctx, model.EnrollmentFilter{})
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal([]int64{first.ID, second.ID, third.ID}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
}

func (s *Suite) TestSetPaymentVerifiedIsIdempotent() {
	enrollment := s.enroll(s.createPlayer("ana"), s.createTournament("Copa"))

	s.Require().NoError(s.storage.SetPaymentVerified(s.ctx, enrollment.ID))
	s.Require().NoError(s.storage.SetPaymentVerified(s.ctx, enrollment.ID))

	retrieved, err := s.storage.GetEnrollment(s.ctx, enrollment.ID)
	s.Require().NoError(err)
	s.True(retrieved.PaymentVerified)
}

func (s *Suite) TestSetPaymentVerifiedNotFound() {
	err := s.storage.SetPaymentVerified(s.ctx, 999)
	s.ErrorIs(err, model.ErrEnrollmentNotFound)
}

func (s *Suite) TestSetKillsOverwrites() {
	enrollment := s.enroll(s.createPlayer("ana"), s.createTournament("Copa"))

	s.Require().NoError(s.storage.SetKills(s.ctx, enrollment.ID, 5))
	s.Require().NoError(s.storage.SetKills(s.ctx, enrollment.ID, 2))

	retrieved, err := s.storage.GetEnrollment(s.ctx, enrollment.ID)
	s.Require().NoError(err)
	s.Equal(2, retrieved.Kills)
}

func (s *Suite) TestSetKillsNotFound() {
	err := s.storage.SetKills(s.ctx, 999, 1)
	s.ErrorIs(err, model.ErrEnrollmentNotFound)
}

func (s *Suite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
