// Package config loads application settings from defaults, an optional
// config.yaml, a .env file and the environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store types
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Type        string `mapstructure:"type"`
	URL         string `mapstructure:"url"`
	Key         string `mapstructure:"key"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

type RateConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PayoutConfig struct {
	PerKillUSD  float64 `mapstructure:"per_kill_usd"`
	EntryFeeUSD float64 `mapstructure:"entry_fee_usd"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Rate   RateConfig   `mapstructure:"rate"`
	Payout PayoutConfig `mapstructure:"payout"`
	Log    LogConfig    `mapstructure:"log"`
}

// Options control where configuration is read from
type Options struct {
	// ConfigFile is an explicit config file; when empty config.yaml is looked
	// up in the working directory and its absence is not an error
	ConfigFile string
	// EnvFiles are loaded into the environment before reading it; missing
	// files are skipped. Defaults to ".env".
	EnvFiles []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.type", StoreMemory)
	v.SetDefault("store.url", "")
	v.SetDefault("store.key", "")
	v.SetDefault("store.auto_migrate", true)

	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)

	v.SetDefault("rate.url", "https://ve.dolarapi.com/v1/dolares/oficial")
	v.SetDefault("rate.timeout", 10*time.Second)

	v.SetDefault("payout.per_kill_usd", 1.00)
	v.SetDefault("payout.entry_fee_usd", 1.50)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the configuration and validates it
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Aliases used by hosting platforms
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("store.url", "STORE_URL", "DATABASE_URL")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for settings that cannot work together
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreMemory, StoreRedis:
	case StorePostgres, StoreSQLite:
		if c.Store.URL == "" {
			return fmt.Errorf("store.url is required for store type %q", c.Store.Type)
		}
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}

	if c.Store.Type == StoreRedis && c.Redis.URL == "" {
		return errors.New("redis.url is required for store type \"redis\"")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Payout.PerKillUSD < 0 || c.Payout.EntryFeeUSD < 0 {
		return errors.New("payout amounts must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q", name)
	}
	return level, nil
}
