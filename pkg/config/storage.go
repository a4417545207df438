package config

import (
	"fmt"
	"strings"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

type StorageConfig struct {
	Driver   string         `koanf:"driver"`
	File     FileConfig     `koanf:"file"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	S3       S3Config       `koanf:"s3"`
}

type FileConfig struct {
	Path string `koanf:"path"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type S3Config struct {
	Bucket    string `koanf:"bucket"`
	Key       string `koanf:"key"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
	PathStyle bool   `koanf:"pathstyle"`

	// Static credentials. When empty the default AWS credential chain is used.
	AccessKeyID     string `koanf:"accesskeyid"`
	SecretAccessKey string `koanf:"secretaccesskey"`
}

// String returns a string representation of the storage configuration.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Driver))
	switch c.Driver {
	case StorageFile:
		b.WriteString(fmt.Sprintf("  file.path: %s\n", c.File.Path))
	case StorageSQLite:
		b.WriteString(fmt.Sprintf("  sqlite.path: %s\n", c.SQLite.Path))
	case StoragePostgres:
		b.WriteString(fmt.Sprintf("  postgres.url: %s\n", MaskURL(c.Postgres.URL)))
		b.WriteString(fmt.Sprintf("  postgres.timeout: %s\n", c.Postgres.Timeout))
		b.WriteString(fmt.Sprintf("  postgres.maxconns: %d\n", c.Postgres.MaxConns))
	case StorageS3:
		b.WriteString(fmt.Sprintf("  s3.bucket: %s\n", c.S3.Bucket))
		b.WriteString(fmt.Sprintf("  s3.key: %s\n", c.S3.Key))
		b.WriteString(fmt.Sprintf("  s3.region: %s\n", c.S3.Region))
		b.WriteString(fmt.Sprintf("  s3.endpoint: %s\n", c.S3.Endpoint))
		b.WriteString(fmt.Sprintf("  s3.pathstyle: %t\n", c.S3.PathStyle))
		b.WriteString(fmt.Sprintf("  s3.static_credentials: %t\n", c.S3.AccessKeyID != ""))
	}
	return b.String()
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case "":
		return fmt.Errorf("storage driver is not configured")
	case StorageMemory:
		return nil
	case StorageFile:
		if c.File.Path == "" {
			return fmt.Errorf("storage.file.path is not configured")
		}
	case StorageSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is not configured")
		}
	case StoragePostgres:
		return c.Postgres.Validate()
	case StorageS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is not configured")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	return nil
}

// MaskURL hides the credentials part of a connection URL.
func MaskURL(url string) string {
	if url == "" {
		return "<not configured>"
	}
	parts := strings.Split(url, "@")
	if len(parts) == 2 {
		return "****@" + parts[1]
	}
	return "****"
}
