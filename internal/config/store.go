package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store persists settings. Every settings mutation is saved immediately.
type Store interface {
	// Load returns the persisted settings, or nil if none were saved yet.
	Load(ctx context.Context) (*Settings, error)

	// Save persists s. The settings persisted before the call become the
	// previous settings.
	Save(ctx context.Context, s *Settings) error

	// Previous returns the settings persisted before the last Save, or nil.
	Previous(ctx context.Context) (*Settings, error)
}

// FileStore implements Store with YAML files.
type FileStore struct {
	path         string
	previousPath string
	logger       *slog.Logger
}

// NewFileStore creates a store writing settings to path and keeping the
// settings replaced by each save at previousPath.
func NewFileStore(path, previousPath string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		path:         path,
		previousPath: previousPath,
		logger:       logger,
	}
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the persisted settings.
func (s *FileStore) Load(ctx context.Context) (*Settings, error) {
	return s.read(ctx, s.path)
}

// Previous returns the settings that were persisted before the last save.
func (s *FileStore) Previous(ctx context.Context) (*Settings, error) {
	return s.read(ctx, s.previousPath)
}

// Save persists settings, keeping the currently persisted copy as previous.
func (s *FileStore) Save(ctx context.Context, settings *Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	for _, dir := range []string{filepath.Dir(s.path), filepath.Dir(s.previousPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	existing, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := writeAtomic(s.previousPath, existing); err != nil {
			return fmt.Errorf("failed to keep previous settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("no settings persisted yet", "path", s.path)
	default:
		return fmt.Errorf("failed to read settings: %w", err)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *FileStore) read(ctx context.Context, path string) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil // Not saved yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings.Normalize(), nil
}

// writeAtomic writes data to a temp file in the same directory and renames it
// over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
