package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientConfig describes how inventoryctl reaches the inventory gRPC API.
type ClientConfig struct {
	Addr           string               `koanf:"addr"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuitbreaker"`
}

type RetryConfig struct {
	MaxAttempts    uint          `koanf:"maxattempts"`
	InitialBackoff time.Duration `koanf:"initialbackoff"`
}

// CircuitBreakerConfig trips the breaker after more than ConsecutiveFailures in a row,
// or when more than ErrorRatePercent of the requests seen in the current window failed.
// The rate is only considered once the window holds more than ConsecutiveFailures requests.
type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32        `koanf:"consecutivefailures"`
	ErrorRatePercent    int           `koanf:"errorratepercent"`
	OpenTimeout         time.Duration `koanf:"opentimeout"`
}

func (c *ClientConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Client ---\n")
	b.WriteString(fmt.Sprintf("  addr: %s\n", c.Addr))
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	b.WriteString(fmt.Sprintf("  retry: %d attempts, backoff from %s\n", c.Retry.MaxAttempts, c.Retry.InitialBackoff))
	b.WriteString(fmt.Sprintf("  circuitbreaker: %d failures or %d%%, open for %s\n",
		c.CircuitBreaker.ConsecutiveFailures, c.CircuitBreaker.ErrorRatePercent, c.CircuitBreaker.OpenTimeout))
	return b.String()
}

func (c *ClientConfig) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("client.addr is not configured")
	case c.Timeout <= 0:
		return fmt.Errorf("client.timeout must be greater than 0")
	case c.Retry.MaxAttempts == 0:
		return fmt.Errorf("client.retry.maxattempts must be greater than 0")
	case c.Retry.InitialBackoff <= 0:
		return fmt.Errorf("client.retry.initialbackoff must be greater than 0")
	case c.CircuitBreaker.ConsecutiveFailures == 0:
		return fmt.Errorf("client.circuitbreaker.consecutivefailures must be greater than 0")
	case c.CircuitBreaker.ErrorRatePercent < 0 || c.CircuitBreaker.ErrorRatePercent > 100:
		return fmt.Errorf("client.circuitbreaker.errorratepercent must be between 0 and 100")
	case c.CircuitBreaker.OpenTimeout <= 0:
		return fmt.Errorf("client.circuitbreaker.opentimeout must be greater than 0")
	}
	return nil
}
