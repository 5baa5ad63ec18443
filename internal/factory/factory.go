package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/torneokills/torneo/internal/config"
	"github.com/torneokills/torneo/internal/services/enrollment"
	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/services/rate"
	"github.com/torneokills/torneo/internal/services/registration"
	"github.com/torneokills/torneo/internal/storage"
	"github.com/torneokills/torneo/internal/storage/memory"
	redisstorage "github.com/torneokills/torneo/internal/storage/redis"
	"github.com/torneokills/torneo/internal/storage/relational"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Rates rate.Provider

	// Services
	RegistrationService *registration.Service
	EnrollmentService   *enrollment.Service
	PayoutService       *payout.Service

	Logger *slog.Logger
}

// Close releases the storage connection
func (a *App) Close() error {
	return a.Storage.Close()
}

// New creates a new application with all dependencies wired
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Use no-op logger if not provided
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := OpenStorage(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("storage ready", slog.String("type", cfg.Store.Type))

	rates := rate.NewClient(rate.Config{
		URL:     cfg.Rate.URL,
		Timeout: cfg.Rate.Timeout,
	}, logger)

	payoutCfg := payout.Config{
		PerKillUSD:  cfg.Payout.PerKillUSD,
		EntryFeeUSD: cfg.Payout.EntryFeeUSD,
	}

	return newWithDependencies(store, rates, payoutCfg, logger), nil
}

// OpenStorage connects to the configured storage backend
func OpenStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Store.Type {
	case "", config.StoreMemory:
		return memory.New(), nil
	case config.StorePostgres, config.StoreSQLite:
		driver := relational.DriverPostgres
		if cfg.Store.Type == config.StoreSQLite {
			driver = relational.DriverSQLite
		}
		store, err := relational.Open(relational.Config{
			Driver:      driver,
			DSN:         cfg.Store.URL,
			Password:    cfg.Store.Key,
			AutoMigrate: cfg.Store.AutoMigrate,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Redis.URL
		if cfg.Redis.PoolSize > 0 {
			redisCfg.PoolSize = cfg.Redis.PoolSize
		}
		if cfg.Redis.MinIdleConns > 0 {
			redisCfg.MinIdleConns = cfg.Redis.MinIdleConns
		}
		store, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid store type %q: must be memory, postgres, sqlite or redis", cfg.Store.Type)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, rates rate.Provider, payoutCfg payout.Config, logger *slog.Logger) *App {
	return &App{
		Storage:             store,
		Rates:               rates,
		RegistrationService: registration.New(store, logger),
		EnrollmentService:   enrollment.New(store, logger),
		PayoutService:       payout.New(store, rates, payoutCfg, logger),
		Logger:              logger,
	}
}
