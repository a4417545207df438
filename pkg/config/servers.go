package config

import (
	"fmt"
	"strings"
	"time"
)

// HTTPConfig serves both the REST API and the metrics endpoint.
type HTTPConfig struct {
	Port           int          `koanf:"port"`
	MaxHeaderBytes int          `koanf:"maxHeaderBytes"`
	Timeout        HTTPTimeouts `koanf:"timeout"`
}

type HTTPTimeouts struct {
	Read       time.Duration `koanf:"read"`
	Write      time.Duration `koanf:"write"`
	Idle       time.Duration `koanf:"idle"`
	ReadHeader time.Duration `koanf:"readHeader"`
}

func (c *HTTPConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- HTTP Server ---\n")
	b.WriteString(fmt.Sprintf("  port: %d, maxHeaderBytes: %d\n", c.Port, c.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  timeouts: read %v, write %v, idle %v, readHeader %v\n",
		c.Timeout.Read, c.Timeout.Write, c.Timeout.Idle, c.Timeout.ReadHeader))
	return b.String()
}

func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	for name, d := range map[string]time.Duration{
		"read":       c.Timeout.Read,
		"write":      c.Timeout.Write,
		"idle":       c.Timeout.Idle,
		"readHeader": c.Timeout.ReadHeader,
	} {
		if d <= 0 {
			return fmt.Errorf("server.timeout.%s must be greater than 0, got %v", name, d)
		}
	}
	return nil
}

type GrpcServerConfig struct {
	Port              string `koanf:"port"`
	ReflectionEnabled bool   `koanf:"reflection"`
}

func (c *GrpcServerConfig) String() string {
	return fmt.Sprintf("\n--- gRPC Server ---\n  port: %s\n  reflection: %t\n", c.Port, c.ReflectionEnabled)
}

func (c *GrpcServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("grpc.port is not configured")
	}
	return nil
}
