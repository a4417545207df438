package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/bakery-inventory/internal/substrate/substratetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstrate_RoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		file   string
		format Format
	}{
		{name: "json", file: "inventory.json", format: JSON},
		{name: "yaml", file: "inventory.yaml", format: YAML},
		{name: "yml", file: "inventory.yml", format: YAML},
		{name: "no extension defaults to json", file: "inventory", format: JSON},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sub, err := New(filepath.Join(t.TempDir(), "nested", tc.file))
			require.NoError(t, err)
			assert.Equal(t, tc.format, sub.format)

			// when / then
			substratetest.RoundTrip(t, sub)
			info, err := os.Stat(sub.Path())
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		})
	}
}

func TestSubstrate_NewEmptyPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSubstrate_LoadCorrupted(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	sub, err := New(path)
	require.NoError(t, err)

	// when
	_, err = sub.Load(context.Background())

	// then
	assert.ErrorContains(t, err, "failed to decode snapshot")
}

func TestSubstrate_LoadEmptyFile(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	sub, err := New(path)
	require.NoError(t, err)

	// when
	snapshot, err := sub.Load(context.Background())

	// then
	require.NoError(t, err)
	assert.Empty(t, snapshot.Products)
}
