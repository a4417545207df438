package config

import (
	"fmt"
	"strings"
	"time"
)

// NATSConfig enables publishing of inventory events to a JetStream stream.
// A negative MaxReconnects retries forever.
type NATSConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Url           string        `koanf:"url"`
	Timeout       time.Duration `koanf:"timeout"`
	Stream        string        `koanf:"stream"`
	MaxReconnects int           `koanf:"maxreconnects"`
	ReconnectWait time.Duration `koanf:"reconnectwait"`
}

func (c *NATSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- NATS ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	if c.Enabled {
		b.WriteString(fmt.Sprintf("  url: %s, stream: %s\n", MaskURL(c.Url), c.Stream))
		b.WriteString(fmt.Sprintf("  timeout: %s, reconnects: %d every %s\n", c.Timeout, c.MaxReconnects, c.ReconnectWait))
	}
	return b.String()
}

func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.Url == "":
		return fmt.Errorf("NATS URL is not configured")
	case c.Timeout <= 0:
		return fmt.Errorf("nats.timeout must be greater than 0")
	case c.Stream == "":
		return fmt.Errorf("nats.stream is not configured")
	case c.ReconnectWait < 0:
		return fmt.Errorf("nats.reconnectwait must not be negative")
	}
	return nil
}
