package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noFiles keeps tests from picking up a .env or config.yaml in the package dir
func noFiles(t *testing.T) Options {
	t.Helper()
	t.Chdir(t.TempDir())
	return Options{EnvFiles: []string{}}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(noFiles(t))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Type)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "https://ve.dolarapi.com/v1/dolares/oficial", cfg.Rate.URL)
	assert.Equal(t, 10*time.Second, cfg.Rate.Timeout)
	assert.InDelta(t, 1.00, cfg.Payout.PerKillUSD, 1e-9)
	assert.InDelta(t, 1.50, cfg.Payout.EntryFeeUSD, 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	opts := noFiles(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://app@db/torneo")
	t.Setenv("STORE_KEY", "s3cret")
	t.Setenv("RATE_TIMEOUT", "3s")
	t.Setenv("PAYOUT_PER_KILL_USD", "2.5")

	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, StorePostgres, cfg.Store.Type)
	assert.Equal(t, "postgres://app@db/torneo", cfg.Store.URL)
	assert.Equal(t, "s3cret", cfg.Store.Key)
	assert.Equal(t, 3*time.Second, cfg.Rate.Timeout)
	assert.InDelta(t, 2.5, cfg.Payout.PerKillUSD, 1e-9)
}

func TestLoadConfigFile(t *testing.T) {
	opts := noFiles(t)
	path := filepath.Join(t.TempDir(), "torneo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
store:
  type: sqlite
  url: torneo.db
log:
  level: debug
`), 0o600))
	opts.ConfigFile = path

	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, StoreSQLite, cfg.Store.Type)
	assert.Equal(t, "torneo.db", cfg.Store.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_TYPE=sqlite\nSTORE_URL=file.db\n"), 0o600))
	// godotenv does not override variables that are already set
	t.Setenv("STORE_TYPE", "")
	require.NoError(t, os.Unsetenv("STORE_TYPE"))
	t.Setenv("STORE_URL", "")
	require.NoError(t, os.Unsetenv("STORE_URL"))

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store.Type)
	assert.Equal(t, "file.db", cfg.Store.URL)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 3000},
			Store:  StoreConfig{Type: StoreMemory},
			Redis:  RedisConfig{URL: "redis://localhost:6379"},
			Log:    LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "memory", mutate: func(c *Config) {}},
		{name: "redis", mutate: func(c *Config) { c.Store.Type = StoreRedis }},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Type = "mongo" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.Store.Type = StorePostgres }, wantErr: true},
		{name: "sqlite without url", mutate: func(c *Config) { c.Store.Type = StoreSQLite }, wantErr: true},
		{name: "sqlite with url", mutate: func(c *Config) { c.Store.Type = StoreSQLite; c.Store.URL = "x.db" }},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "negative payout", mutate: func(c *Config) { c.Payout.PerKillUSD = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
