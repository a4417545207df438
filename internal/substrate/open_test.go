package substrate

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/abgdnv/bakery-inventory/internal/substrate/file"
	"github.com/abgdnv/bakery-inventory/internal/substrate/memory"
	"github.com/abgdnv/bakery-inventory/internal/substrate/sqlite"
	"github.com/abgdnv/bakery-inventory/internal/substrate/substratetest"
	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name     string
		cfg      config.StorageConfig
		expected any
	}{
		{
			name:     "memory",
			cfg:      config.StorageConfig{Driver: config.StorageMemory},
			expected: &memory.Substrate{},
		},
		{
			name:     "file",
			cfg:      config.StorageConfig{Driver: config.StorageFile, File: config.FileConfig{Path: filepath.Join(dir, "inventory.yaml")}},
			expected: &file.Substrate{},
		},
		{
			name:     "sqlite",
			cfg:      config.StorageConfig{Driver: config.StorageSQLite, SQLite: config.SQLiteConfig{Path: filepath.Join(dir, "inventory.db")}},
			expected: &sqlite.Substrate{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			sub, err := Open(context.Background(), tc.cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

			// then
			require.NoError(t, err)
			t.Cleanup(func() { _ = sub.Close() })
			assert.IsType(t, tc.expected, sub)
			substratetest.RoundTrip(t, sub)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "tape"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.EqualError(t, err, `unknown storage driver "tape"`)
}
