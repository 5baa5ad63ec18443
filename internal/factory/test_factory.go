package factory

import (
	"context"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/services/rate"
	"github.com/torneokills/torneo/internal/storage"
	"github.com/torneokills/torneo/internal/storage/memory"
	"github.com/torneokills/torneo/internal/testutil"
)

// TestRate is the exchange rate used by NewTestApp
const TestRate = 36.50

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App
}

// NewTestApp creates an App over in-memory storage and a fixed rate
func NewTestApp() *TestApp {
	return NewTestAppWith(memory.New(), rate.Static{Rate: TestRate})
}

// NewTestAppWith creates an App over the given storage and rate provider
func NewTestAppWith(store storage.Storage, rates rate.Provider) *TestApp {
	app := newWithDependencies(store, rates, payout.DefaultConfig(), testutil.NopLogger())
	return &TestApp{App: app}
}

// SeedTournament creates a tournament
func (t *TestApp) SeedTournament(name string) *model.Tournament {
	tournament := &model.Tournament{Name: name}
	if err := t.Storage.CreateTournament(context.Background(), tournament); err != nil {
		panic(err)
	}
	return tournament
}

// SeedEnrollment registers a player into the tournament, optionally verified
// and with kills recorded, and returns the enrollment id
func (t *TestApp) SeedEnrollment(tournamentID int64, name string, verified bool, kills int) int64 {
	ctx := context.Background()
	player := &model.Player{
		FullName:   name,
		GameID:     "ff-" + name,
		Email:      name + "@example.com",
		NationalID: "V-" + name,
		Phone:      "0414-" + name,
		Bank:       "Banesco",
	}
	if err := t.Storage.CreatePlayer(ctx, player); err != nil {
		panic(err)
	}
	enrollment := &model.Enrollment{PlayerID: player.ID, TournamentID: tournamentID}
	if err := t.Storage.CreateEnrollment(ctx, enrollment); err != nil {
		panic(err)
	}
	if verified {
		if err := t.Storage.SetPaymentVerified(ctx, enrollment.ID); err != nil {
			panic(err)
		}
	}
	if kills > 0 {
		if err := t.Storage.SetKills(ctx, enrollment.ID, kills); err != nil {
			panic(err)
		}
	}
	return enrollment.ID
}
