// Package file provides a substrate that stores the snapshot as a JSON or YAML document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abgdnv/bakery-inventory/internal/store"
	"gopkg.in/yaml.v3"
)

var _ store.Substrate = (*Substrate)(nil)

// Format selects the document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// Substrate persists the snapshot to a single file.
type Substrate struct {
	path   string
	format Format
}

// New creates a file substrate. The format follows the extension: .yaml and .yml select YAML, anything else JSON.
func New(path string) (*Substrate, error) {
	if path == "" {
		return nil, fmt.Errorf("file substrate path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	format := JSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	}
	return &Substrate{path: path, format: format}, nil
}

// Path returns the snapshot file location.
func (s *Substrate) Path() string {
	return s.path
}

func (s *Substrate) Load(_ context.Context) (store.Snapshot, error) {
	var snapshot store.Snapshot
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return snapshot, nil
	}
	switch s.format {
	case YAML:
		err = yaml.Unmarshal(data, &snapshot)
	default:
		err = json.Unmarshal(data, &snapshot)
	}
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}
	return snapshot, nil
}

// Save writes the snapshot to a temporary file and renames it over the previous one.
func (s *Substrate) Save(_ context.Context, snapshot store.Snapshot) error {
	var (
		data []byte
		err  error
	)
	switch s.format {
	case YAML:
		data, err = yaml.Marshal(snapshot)
	default:
		data, err = json.MarshalIndent(snapshot, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", s.path, err)
	}
	return nil
}

func (s *Substrate) Close() error {
	return nil
}
