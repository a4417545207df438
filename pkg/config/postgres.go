package config

import (
	"fmt"
	"strings"
	"time"
)

// PostgresConfig is used by the postgres substrate.
// MaxConns of zero keeps the pgx default.
type PostgresConfig struct {
	URL      string        `koanf:"url"`
	Timeout  time.Duration `koanf:"timeout"`
	MaxConns int32         `koanf:"maxconns"`
}

func (c *PostgresConfig) Validate() error {
	switch {
	case c.URL == "":
		return fmt.Errorf("storage.postgres.url is not configured")
	case !strings.HasPrefix(c.URL, "postgres://") && !strings.HasPrefix(c.URL, "postgresql://"):
		return fmt.Errorf("storage.postgres.url must start with 'postgres://': %s", MaskURL(c.URL))
	case c.Timeout <= 0:
		return fmt.Errorf("storage.postgres.timeout must be greater than 0")
	case c.MaxConns < 0:
		return fmt.Errorf("storage.postgres.maxconns must not be negative")
	}
	return nil
}
