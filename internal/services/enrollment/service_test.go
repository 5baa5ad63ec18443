package enrollment

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage/memory"
	"github.com/torneokills/torneo/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage    *memory.Storage
	service    *Service
	tournament *model.Tournament
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())

	s.tournament = &model.Tournament{Name: "Copa"}
	s.Require().NoError(s.storage.CreateTournament(s.ctx, s.tournament))
}

func (s *ServiceSuite) enroll(name string) int64 {
	player := &model.Player{FullName: name}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))
	e := &model.Enrollment{PlayerID: player.ID, TournamentID: s.tournament.ID}
	s.Require().NoError(s.storage.CreateEnrollment(s.ctx, e))
	return e.ID
}

func ids(details []model.EnrollmentDetail) []int64 {
	out := make([]int64, 0, len(details))
	for _, d := range details {
		out = append(out, d.ID)
	}
	return out
}

func (s *ServiceSuite) TestPendingAndVerifiedPartitionEnrollments() {
	a := s.enroll("ana")
	b := s.enroll("luis")
	c := s.enroll("eva")
	s.Require().NoError(s.service.VerifyPayment(s.ctx, b))

	pending, err := s.service.Pending(s.ctx)
	s.Require().NoError(err)
	verified, err := s.service.Verified(s.ctx)
	s.Require().NoError(err)

	s.Equal([]int64{a, c}, ids(pending))
	s.Equal([]int64{b}, ids(verified))

	all := append(ids(pending), ids(verified)...)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	s.Equal([]int64{a, b, c}, all)
}

func (s *ServiceSuite) TestVerifyPaymentTwice() {
	id := s.enroll("ana")

	s.Require().NoError(s.service.VerifyPayment(s.ctx, id))
	s.Require().NoError(s.service.VerifyPayment(s.ctx, id))

	verified, err := s.service.Verified(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int64{id}, ids(verified))
}

func (s *ServiceSuite) TestVerifyPaymentUnknown() {
	err := s.service.VerifyPayment(s.ctx, 42)
	s.ErrorIs(err, model.ErrEnrollmentNotFound)
}

func (s *ServiceSuite) TestSetKills() {
	id := s.enroll("ana")
	s.Require().NoError(s.service.VerifyPayment(s.ctx, id))

	s.Require().NoError(s.service.SetKills(s.ctx, id, 4))

	verified, err := s.service.Verified(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(verified, 1)
	s.Equal(4, verified[0].Kills)
}

func (s *ServiceSuite) TestSetKillsRejectsNegative() {
	id := s.enroll("ana")

	err := s.service.SetKills(s.ctx, id, -1)
	s.ErrorIs(err, model.ErrInvalidKills)

	e, err := s.storage.GetEnrollment(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(0, e.Kills)
}

func TestParseKills(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "0", want: 0},
		{raw: "12", want: 12},
		{raw: " 7 ", want: 7},
		{raw: "", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "2.5", wantErr: true},
		{raw: "diez", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseKills(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidKills)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnrollmentID(t *testing.T) {
	id, err := ParseEnrollmentID("15")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	for _, raw := range []string{"", "x", "0", "-2"} {
		_, err := ParseEnrollmentID(raw)
		assert.ErrorIs(t, err, ErrInvalidEnrollmentID, "input %q", raw)
	}
}
