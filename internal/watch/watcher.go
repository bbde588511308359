package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/jackzampolin/headnum/internal/editor"
	"github.com/jackzampolin/headnum/internal/numbering"
)

// Pass describes one regeneration run.
type Pass struct {
	ID      string
	Outcome editor.Outcome
	Err     error
}

// Config holds watcher configuration.
type Config struct {
	// Path is the document to watch.
	Path string
	// Settings supplies a fresh settings snapshot for every decision.
	Settings numbering.SettingsSource
	// Logger is the structured logger to use
	Logger *slog.Logger
	// OnPass, if set, is called after every regeneration run.
	OnPass func(Pass)
}

// Watcher regenerates heading numbers in a document after edits that touch
// a heading, once the edits have been quiet for the configured debounce.
type Watcher struct {
	doc      *editor.File
	settings numbering.SettingsSource
	engine   *numbering.Engine
	logger   *slog.Logger
	onPass   func(Pass)

	debouncer *Debouncer

	mu      sync.Mutex
	running bool
}

// New opens the document and prepares a watcher for it.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("document path is required")
	}
	if cfg.Settings == nil {
		return nil, errors.New("settings source is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	doc, err := editor.OpenFile(cfg.Path, cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		doc:       doc,
		settings:  cfg.Settings,
		engine:    numbering.NewEngine(cfg.Settings),
		logger:    cfg.Logger.With("document", cfg.Path),
		onPass:    cfg.OnPass,
		debouncer: NewDebouncer(cfg.Settings.Settings().Debounce),
	}, nil
}

// Run watches the document until ctx is cancelled. A pending regeneration is
// dropped on return.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		if w.debouncer.Cancel() {
			w.logger.Info("dropped scheduled regeneration")
		}
		w.debouncer.Stop()
	}()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	// Editors often replace the file on save, so watch the directory.
	dir := filepath.Dir(w.doc.Path())
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("watching document")

	base := filepath.Base(w.doc.Path())
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped watching document")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.handleChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// handleChange decides whether an edit on disk should schedule a pass.
func (w *Watcher) handleChange() {
	prev := w.doc.Text()
	changed, err := w.doc.Reload()
	if err != nil {
		w.logger.Warn("failed to reload document", "error", err)
		return
	}
	if !changed {
		return
	}

	s := w.settings.Settings()
	if !s.AutoGenerate {
		w.logger.Debug("document changed, auto-generate disabled")
		return
	}

	next := w.doc.Text()
	added, ok := DiffRange(prev, next)
	if !ok {
		return
	}
	removed, _ := DiffRange(next, prev)
	if !HeadingChanged(w.logger, w.doc, added) && !HeadingChanged(w.logger, editor.NewBuffer(prev), removed) {
		return
	}

	if w.debouncer.Pending() {
		w.logger.Debug("postponing scheduled regeneration")
	}
	w.debouncer.TriggerAfter(s.Debounce, w.regenerate)
}

// regenerate runs one generation pass against a fresh settings snapshot. A
// save that lands while the pass runs wins; the pass is skipped and the save
// is handled as a new change.
func (w *Watcher) regenerate() {
	id := uuid.New().String()
	logger := w.logger.With("pass_id", id)

	if _, err := w.doc.Reload(); err != nil {
		logger.Warn("failed to reload document before pass", "error", err)
		w.report(Pass{ID: id, Err: err})
		return
	}

	out, err := editor.Generate(w.doc, w.engine)
	switch {
	case errors.Is(err, editor.ErrModifiedOnDisk):
		logger.Info("document changed during pass, skipping")
	case err != nil:
		logger.Error("heading generation failed", "error", err)
	default:
		logger.Info("headings regenerated", "changed", out.Changed, "headings", out.Headings)
	}
	w.report(Pass{ID: id, Outcome: out, Err: err})
}

func (w *Watcher) report(p Pass) {
	if w.onPass != nil {
		w.onPass(p)
	}
}
