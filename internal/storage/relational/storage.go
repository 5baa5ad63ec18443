package relational

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// Storage is a gorm-backed implementation of the storage interface
type Storage struct {
	db *gorm.DB
}

// Open connects to the configured database
func Open(cfg Config) (*Storage, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dsn, err := cfg.postgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if cfg.Driver == DriverSQLite && strings.Contains(cfg.DSN, ":memory:") {
		// Every connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	s := NewWithDB(db)
	if cfg.AutoMigrate {
		if err := s.Migrate(context.Background()); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// NewWithDB creates a Storage over an existing gorm handle
func NewWithDB(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Migrate creates or updates the tables
func (s *Storage) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(&tournamentRecord{}, &playerRecord{}, &enrollmentRecord{})
	if err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}

// Tournament operations

func (s *Storage) CreateTournament(ctx context.Context, tournament *model.Tournament) error {
	rec := toTournamentRecord(tournament)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}
	*tournament = rec.toModel()
	return nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	var recs []tournamentRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}
	tournaments := make([]model.Tournament, 0, len(recs))
	for _, rec := range recs {
		tournaments = append(tournaments, rec.toModel())
	}
	return tournaments, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	rec := toPlayerRecord(player)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	*player = rec.toModel()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	var rec playerRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("select player: %w", err)
	}
	player := rec.toModel()
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var recs []playerRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	players := make([]model.Player, 0, len(recs))
	for _, rec := range recs {
		players = append(players, rec.toModel())
	}
	return players, nil
}

// Enrollment operations

func (s *Storage) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	rec := toEnrollmentRecord(enrollment)
	// Associations are referenced by id only; never upsert them from here
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	*enrollment = rec.toModel()
	return nil
}

func (s *Storage) GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error) {
	var rec enrollmentRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("select enrollment: %w", err)
	}
	enrollment := rec.toModel()
	return &enrollment, nil
}

func (s *Storage) ListEnrollments(ctx context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentDetail, error) {
	q := s.db.WithContext(ctx).
		Preload("Player").
		Preload("Tournament").
		Order("id")
	if filter.Verified != nil {
		q = q.Where("pago_verificado = ?", *filter.Verified)
	}
	if filter.WithKills {
		q = q.Where("kills > ?", 0)
	}

	var recs []enrollmentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("select enrollments: %w", err)
	}
	details := make([]model.EnrollmentDetail, 0, len(recs))
	for _, rec := range recs {
		details = append(details, rec.toDetail())
	}
	return details, nil
}

func (s *Storage) SetPaymentVerified(ctx context.Context, id int64) error {
	return s.updateEnrollment(ctx, id, "pago_verificado", true)
}

func (s *Storage) SetKills(ctx context.Context, id int64, kills int) error {
	return s.updateEnrollment(ctx, id, "kills", kills)
}

func (s *Storage) updateEnrollment(ctx context.Context, id int64, column string, value any) error {
	res := s.db.WithContext(ctx).
		Model(&enrollmentRecord{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update enrollment %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrEnrollmentNotFound
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
