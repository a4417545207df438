// Package config holds the configuration of the inventory service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/abgdnv/bakery-inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Storage    config.StorageConfig    `koanf:"storage"`
	NATS       config.NATSConfig       `koanf:"nats"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Auth       config.AuthConfig       `koanf:"auth"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
}

// Defaults returns the values used when neither config.yaml nor the environment set a key.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":                       8080,
		"server.maxHeaderBytes":             1 << 20,
		"server.timeout.read":               5 * time.Second,
		"server.timeout.write":              10 * time.Second,
		"server.timeout.idle":               60 * time.Second,
		"server.timeout.readHeader":         2 * time.Second,
		"grpc.port":                         "9090",
		"storage.driver":                    config.StorageFile,
		"storage.file.path":                 "data/inventory.json",
		"storage.postgres.timeout":          10 * time.Second,
		"storage.s3.key":                    "inventory/snapshot.json",
		"nats.timeout":                      5 * time.Second,
		"nats.stream":                       "INVENTORY",
		"nats.maxreconnects":                60,
		"nats.reconnectwait":                2 * time.Second,
		"telemetry.traces.otlphttp.timeout": 5 * time.Second,
		"telemetry.traces.sampleratio":      1.0,
		"auth.mininterval":                  5 * time.Minute,
		"log.level":                         "info",
		"log.format":                        "json",
		"pprof.addr":                        "localhost:6060",
		"shutdown.timeout":                  15 * time.Second,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString(c.Storage.String())
	b.WriteString(c.NATS.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Auth.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []struct {
		section string
		v       configloader.Validator
	}{
		{"server", &c.HTTPServer},
		{"grpc", &c.GRPC},
		{"storage", &c.Storage},
		{"nats", &c.NATS},
		{"telemetry", &c.Telemetry},
		{"auth", &c.Auth},
		{"log", &c.Log},
		{"pprof", &c.PProf},
		{"shutdown", &c.Shutdown},
	}
	for _, s := range validators {
		if err := s.v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.section, err)
		}
	}
	return nil
}
