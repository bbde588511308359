package home

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackzampolin/headnum/internal/config"
)

const (
	// DefaultDirName is the default name for the headnum home directory.
	DefaultDirName = ".headnum"

	// ConfigFileName is the settings file name.
	ConfigFileName = "settings.yaml"

	// PreviousFileName holds the settings in effect before the last save.
	PreviousFileName = "previous.yaml"
)

// Dir represents the headnum home directory.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.headnum).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the settings file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// PreviousPath returns the path to the previous settings file.
func (d *Dir) PreviousPath() string {
	return filepath.Join(d.path, PreviousFileName)
}

// EnsureExists creates the home directory if it doesn't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}
	return nil
}

// ConfigExists returns true if the settings file exists.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// Store returns the settings store rooted in this directory.
func (d *Dir) Store(logger *slog.Logger) *config.FileStore {
	return config.NewFileStore(d.ConfigPath(), d.PreviousPath(), logger)
}
