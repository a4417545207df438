package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	logLevels  = []string{"", "debug", "info", "warn", "error"}
	logFormats = []string{"", "json", "text"}
)

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	b.WriteString(fmt.Sprintf("  format: %s\n", c.Format))
	return b.String()
}

func (c *LogConfig) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Level)) {
		return fmt.Errorf("unknown log level %q, expected debug, info, warn or error", c.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Format)) {
		return fmt.Errorf("unknown log format %q, expected json or text", c.Format)
	}
	return nil
}

type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// String returns a string representation of the pprof configuration.
func (c *PProfConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- PProf ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  address: %s\n", c.Addr))
	return b.String()
}

func (c *PProfConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("pprof is enabled but address is not configured")
	}
	return nil
}

// ShutdownConfig bounds how long servers get to drain and the last snapshot to be written.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// String returns a string representation of the ShutdownConfig.
func (c *ShutdownConfig) String() string {
	return fmt.Sprintf("\n--- Shutdown ---\n  timeout: %s\n", c.Timeout)
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}
