package cli

import (
	"fmt"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/abgdnv/bakery-inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*clientConfig)(nil)

// clientConfig is read from inventoryctl.yaml, .env and INVENTORYCTL_* variables.
type clientConfig struct {
	Client config.ClientConfig     `koanf:"client"`
	Events config.SubscriberConfig `koanf:"events"`
	Log    config.LogConfig        `koanf:"log"`
}

func clientDefaults() map[string]any {
	return map[string]any{
		"client.addr":                               "localhost:9090",
		"client.timeout":                            5 * time.Second,
		"client.retry.maxattempts":                  3,
		"client.retry.initialbackoff":               100 * time.Millisecond,
		"client.circuitbreaker.consecutivefailures": 5,
		"client.circuitbreaker.errorratepercent":    60,
		"client.circuitbreaker.opentimeout":         10 * time.Second,
		"events.url":                                "nats://localhost:4222",
		"events.stream":                             "INVENTORY",
		"events.subject":                            "inventory.>",
		"events.batch":                              10,
		"events.timeout":                            5 * time.Second,
		"events.interval":                           time.Second,
		"log.level":                                 "warn",
		"log.format":                                "text",
	}
}

func (c *clientConfig) Validate() error {
	if err := c.Client.Validate(); err != nil {
		return err
	}
	if err := c.Events.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func loadClientConfig(path string) (*clientConfig, error) {
	return configloader.Load[*clientConfig]("inventoryctl",
		configloader.WithConfigFile(path),
		configloader.WithDefaults(clientDefaults()),
	)
}
