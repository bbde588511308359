package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
)

// writeAttempts bounds retries of a document write. Editors and sync tools
// briefly lock or replace files; a short retry rides that out.
const (
	writeAttempts = 3
	writeDelay    = 50 * time.Millisecond
)

// ErrModifiedOnDisk is returned by SetText when the document on disk no
// longer holds the text last read or written.
var ErrModifiedOnDisk = errors.New("document modified on disk")

// File is an Editor backed by a document on disk. The text is read on open
// and on Reload; SetText replaces the file atomically.
type File struct {
	path   string
	logger *slog.Logger

	mu     sync.RWMutex
	text   string
	mode   fs.FileMode
	cursor Position
}

// OpenFile reads the document at path.
func OpenFile(path string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f := &File{path: path, logger: logger, mode: 0o644}
	if _, err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// Reload re-reads the document from disk and reports whether the text
// differs from what was held.
func (f *File) Reload() (bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	info, err := os.Stat(f.path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", f.path, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	changed := string(data) != f.text
	f.text = string(data)
	f.mode = info.Mode().Perm()
	f.cursor = Clamp(f.text, f.cursor)
	return changed, nil
}

// Text returns the text last read from or written to disk.
func (f *File) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.text
}

// SetText writes text to disk through a temp file and rename, retrying
// transient failures. The held text changes only once the write succeeds.
// If the file was changed by someone else since it was last read, nothing is
// written and ErrModifiedOnDisk is returned.
func (f *File) SetText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if string(current) != f.text {
		return fmt.Errorf("%s: %w", f.path, ErrModifiedOnDisk)
	}

	err = retry.Do(
		func() error {
			return writeAtomic(f.path, []byte(text), f.mode)
		},
		retry.Attempts(writeAttempts),
		retry.Delay(writeDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			f.logger.Warn("retrying document write", "path", f.path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	f.text = text
	f.cursor = Clamp(text, f.cursor)
	return nil
}

// Cursor returns the cursor position.
func (f *File) Cursor() Position {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cursor
}

// SetCursor moves the cursor, clamped to the document.
func (f *File) SetCursor(p Position) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = Clamp(f.text, p)
}

// Line returns 0-based line n without its terminator.
func (f *File) Line(n int) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return lineAt(f.text, n)
}

// LineCount returns the number of lines, counting a trailing empty line.
func (f *File) LineCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return strings.Count(f.text, "\n") + 1
}

func writeAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
