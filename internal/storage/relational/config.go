package relational

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds relational database connection settings
type Config struct {
	// Driver selects the gorm dialector ("postgres" or "sqlite")
	Driver string
	// DSN is a postgres URL/keyword string or a sqlite file name
	DSN string
	// Password is the store access key. For postgres it is injected into the
	// DSN when the DSN does not carry a password of its own.
	Password string
	// AutoMigrate creates missing tables on open
	AutoMigrate bool
}

// postgresDSN returns the DSN with the access key applied
func (c Config) postgresDSN() (string, error) {
	if c.Password == "" {
		return c.DSN, nil
	}

	if strings.HasPrefix(c.DSN, "postgres://") || strings.HasPrefix(c.DSN, "postgresql://") {
		u, err := url.Parse(c.DSN)
		if err != nil {
			return "", fmt.Errorf("invalid store url: %w", err)
		}
		if u.User == nil {
			return "", fmt.Errorf("store url has no user to attach the access key to")
		}
		if _, hasPassword := u.User.Password(); hasPassword {
			return c.DSN, nil
		}
		u.User = url.UserPassword(u.User.Username(), c.Password)
		return u.String(), nil
	}

	if strings.Contains(c.DSN, "password=") {
		return c.DSN, nil
	}
	return strings.TrimSpace(c.DSN + " password=" + c.Password), nil
}
