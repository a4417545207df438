package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         StorageConfig
		expectError string
	}{
		{name: "memory", cfg: StorageConfig{Driver: StorageMemory}},
		{name: "file", cfg: StorageConfig{Driver: StorageFile, File: FileConfig{Path: "data/inventory.yaml"}}},
		{name: "file without path", cfg: StorageConfig{Driver: StorageFile}, expectError: "storage.file.path"},
		{name: "sqlite", cfg: StorageConfig{Driver: StorageSQLite, SQLite: SQLiteConfig{Path: "inventory.db"}}},
		{name: "sqlite without path", cfg: StorageConfig{Driver: StorageSQLite}, expectError: "storage.sqlite.path"},
		{
			name: "postgres",
			cfg:  StorageConfig{Driver: StoragePostgres, Postgres: PostgresConfig{URL: "postgres://u:p@localhost/inventory", Timeout: time.Second}},
		},
		{
			name:        "postgres with bad url",
			cfg:         StorageConfig{Driver: StoragePostgres, Postgres: PostgresConfig{URL: "mysql://localhost", Timeout: time.Second}},
			expectError: "postgres://",
		},
		{
			name:        "postgres without timeout",
			cfg:         StorageConfig{Driver: StoragePostgres, Postgres: PostgresConfig{URL: "postgres://localhost/inventory"}},
			expectError: "timeout",
		},
		{name: "s3", cfg: StorageConfig{Driver: StorageS3, S3: S3Config{Bucket: "bakery"}}},
		{name: "s3 without bucket", cfg: StorageConfig{Driver: StorageS3}, expectError: "storage.s3.bucket"},
		{name: "empty driver", cfg: StorageConfig{}, expectError: "not configured"},
		{name: "unknown driver", cfg: StorageConfig{Driver: "redis"}, expectError: "unknown storage driver"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectError != "" {
				assert.ErrorContains(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOptionalSections_Validate(t *testing.T) {
	// disabled sections are valid without any other settings
	assert.NoError(t, (&NATSConfig{}).Validate())
	assert.NoError(t, (&TelemetryConfig{}).Validate())
	assert.NoError(t, (&AuthConfig{}).Validate())

	assert.ErrorContains(t, (&AuthConfig{Enabled: true}).Validate(), "JWKS URL")
	assert.NoError(t, (&AuthConfig{
		Enabled:     true,
		JwksURL:     "http://localhost:8180/realms/bakery/protocol/openid-connect/certs",
		Issuer:      "http://localhost:8180/realms/bakery",
		ClientID:    "inventoryctl",
		MinInterval: time.Minute,
	}).Validate())

	assert.Error(t, (&NATSConfig{Enabled: true}).Validate())
	assert.Error(t, (&NATSConfig{Enabled: true, Url: "nats://localhost:4222", Timeout: time.Second}).Validate())
	assert.NoError(t, (&NATSConfig{Enabled: true, Url: "nats://localhost:4222", Timeout: time.Second, Stream: "INVENTORY"}).Validate())
	assert.Error(t, (&TelemetryConfig{Enabled: true}).Validate())
}

func TestMaskURL(t *testing.T) {
	assert.Equal(t, "<not configured>", MaskURL(""))
	assert.Equal(t, "****@db:5432/inventory", MaskURL("postgres://user:secret@db:5432/inventory"))
	assert.Equal(t, "****", MaskURL("postgres://db/inventory"))
}

func TestStorageConfig_String_MasksCredentials(t *testing.T) {
	cfg := StorageConfig{Driver: StoragePostgres, Postgres: PostgresConfig{URL: "postgres://user:secret@db/inventory"}}
	s := cfg.String()
	assert.Contains(t, s, "****@db/inventory")
	assert.NotContains(t, s, "secret")
}

func TestLogConfig_Validate(t *testing.T) {
	assert.NoError(t, (&LogConfig{}).Validate())
	assert.NoError(t, (&LogConfig{Level: "DEBUG", Format: "text"}).Validate())
	assert.ErrorContains(t, (&LogConfig{Level: "verbose"}).Validate(), `unknown log level "verbose"`)
	assert.ErrorContains(t, (&LogConfig{Format: "logfmt"}).Validate(), `unknown log format "logfmt"`)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() ClientConfig {
		return ClientConfig{
			Addr:           "localhost:9090",
			Timeout:        5 * time.Second,
			Retry:          RetryConfig{MaxAttempts: 3, InitialBackoff: 100 * time.Millisecond},
			CircuitBreaker: CircuitBreakerConfig{ConsecutiveFailures: 5, ErrorRatePercent: 60, OpenTimeout: 10 * time.Second},
		}
	}
	testCases := []struct {
		name        string
		mutate      func(c *ClientConfig)
		expectError string
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "no addr", mutate: func(c *ClientConfig) { c.Addr = "" }, expectError: "client.addr"},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Timeout = 0 }, expectError: "client.timeout"},
		{name: "no attempts", mutate: func(c *ClientConfig) { c.Retry.MaxAttempts = 0 }, expectError: "client.retry.maxattempts"},
		{name: "rate above 100", mutate: func(c *ClientConfig) { c.CircuitBreaker.ErrorRatePercent = 150 }, expectError: "client.circuitbreaker.errorratepercent"},
		{name: "no open timeout", mutate: func(c *ClientConfig) { c.CircuitBreaker.OpenTimeout = 0 }, expectError: "client.circuitbreaker.opentimeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := valid()
			tc.mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			if tc.expectError != "" {
				assert.ErrorContains(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
