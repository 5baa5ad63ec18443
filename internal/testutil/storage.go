package testutil

import (
	"context"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// FaultyStorage wraps a Storage and fails selected operations.
// A nil error field passes the call through.
type FaultyStorage struct {
	storage.Storage

	CreatePlayerErr     error
	CreateEnrollmentErr error
	ListEnrollmentsErr  error
	ListTournamentsErr  error
	UpdateErr           error
	PingErr             error

	// FailVerifiedList fails ListEnrollments only for the verified filter
	FailVerifiedList bool
}

// NewFaultyStorage wraps s
func NewFaultyStorage(s storage.Storage) *FaultyStorage {
	return &FaultyStorage{Storage: s}
}

func (f *FaultyStorage) CreatePlayer(ctx context.Context, p *model.Player) error {
	if f.CreatePlayerErr != nil {
		return f.CreatePlayerErr
	}
	return f.Storage.CreatePlayer(ctx, p)
}

func (f *FaultyStorage) CreateEnrollment(ctx context.Context, e *model.Enrollment) error {
	if f.CreateEnrollmentErr != nil {
		return f.CreateEnrollmentErr
	}
	return f.Storage.CreateEnrollment(ctx, e)
}

func (f *FaultyStorage) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	if f.ListTournamentsErr != nil {
		return nil, f.ListTournamentsErr
	}
	return f.Storage.ListTournaments(ctx)
}

func (f *FaultyStorage) ListEnrollments(ctx context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentDetail, error) {
	if f.ListEnrollmentsErr != nil {
		verifiedQuery := filter.Verified != nil && *filter.Verified
		if !f.FailVerifiedList || verifiedQuery {
			return nil, f.ListEnrollmentsErr
		}
	}
	return f.Storage.ListEnrollments(ctx, filter)
}

func (f *FaultyStorage) SetPaymentVerified(ctx context.Context, id int64) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	return f.Storage.SetPaymentVerified(ctx, id)
}

func (f *FaultyStorage) SetKills(ctx context.Context, id int64, kills int) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	return f.Storage.SetKills(ctx, id, kills)
}

func (f *FaultyStorage) Ping(ctx context.Context) error {
	if f.PingErr != nil {
		return f.PingErr
	}
	return f.Storage.Ping(ctx)
}
