package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	tournaments map[int64]*model.Tournament
	players     map[int64]*model.Player
	enrollments map[int64]*model.Enrollment

	lastTournamentID int64
	lastPlayerID     int64
	lastEnrollmentID int64

	now func() time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		tournaments: make(map[int64]*model.Tournament),
		players:     make(map[int64]*model.Player),
		enrollments: make(map[int64]*model.Enrollment),
		now:         time.Now,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Tournament operations

func (s *Storage) CreateTournament(ctx context.Context, tournament *model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTournamentID++
	tournament.ID = s.lastTournamentID
	tournament.CreatedAt = s.now()
	stored := *tournament
	s.tournaments[stored.ID] = &stored
	return nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tournaments := make([]model.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		tournaments = append(tournaments, *t)
	}
	sort.Slice(tournaments, func(i, j int) bool { return tournaments[i].ID < tournaments[j].ID })
	return tournaments, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPlayerID++
	player.ID = s.lastPlayerID
	player.CreatedAt = s.now()
	stored := *player
	s.players[stored.ID] = &stored
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, *p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

// Enrollment operations

func (s *Storage) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Mirror the foreign keys of the relational backend
	if _, ok := s.players[enrollment.PlayerID]; !ok {
		return model.ErrPlayerNotFound
	}
	if _, ok := s.tournaments[enrollment.TournamentID]; !ok {
		return model.ErrTournamentNotFound
	}

	s.lastEnrollmentID++
	enrollment.ID = s.lastEnrollmentID
	enrollment.CreatedAt = s.now()
	stored := *enrollment
	s.enrollments[stored.ID] = &stored
	return nil
}

func (s *Storage) GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, model.ErrEnrollmentNotFound
	}
	e := *enrollment
	return &e, nil
}

func (s *Storage) ListEnrollments(ctx context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	details := make([]model.EnrollmentDetail, 0)
	for _, e := range s.enrollments {
		if !filter.Matches(*e) {
			continue
		}
		detail := model.EnrollmentDetail{Enrollment: *e}
		if p, ok := s.players[e.PlayerID]; ok {
			detail.Player = *p
		}
		if t, ok := s.tournaments[e.TournamentID]; ok {
			detail.Tournament = *t
		}
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool { return details[i].ID < details[j].ID })
	return details, nil
}

func (s *Storage) SetPaymentVerified(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollment, ok := s.enrollments[id]
	if !ok {
		return model.ErrEnrollmentNotFound
	}
	enrollment.PaymentVerified = true
	return nil
}

func (s *Storage) SetKills(ctx context.Context, id int64, kills int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	enrollment, ok := s.enrollments[id]
	if !ok {
		return model.ErrEnrollmentNotFound
	}
	enrollment.Kills = kills
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}
