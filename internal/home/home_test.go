package home

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/headnum/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-headnum")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-headnum" {
			t.Errorf("expected path /tmp/test-headnum, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-headnum")

	if got := dir.ConfigPath(); got != "/tmp/test-headnum/settings.yaml" {
		t.Errorf("unexpected config path %s", got)
	}
	if got := dir.PreviousPath(); got != "/tmp/test-headnum/previous.yaml" {
		t.Errorf("unexpected previous path %s", got)
	}
}

func TestDir_EnsureExists(t *testing.T) {
	dir, err := New(filepath.Join(t.TempDir(), "headnum-test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(dir.Path()); !os.IsNotExist(err) {
		t.Fatalf("directory should not exist before EnsureExists: %v", err)
	}
	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	info, err := os.Stat(dir.Path())
	if err != nil || !info.IsDir() {
		t.Errorf("directory should exist after EnsureExists: %v", err)
	}
}

func TestDir_Store(t *testing.T) {
	dir, _ := New(t.TempDir())

	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	store := dir.Store(nil)
	if store.Path() != dir.ConfigPath() {
		t.Errorf("store path %s, want %s", store.Path(), dir.ConfigPath())
	}

	s, err := store.Load(t.Context())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != nil {
		t.Fatalf("expected no settings before first save, got %+v", s)
	}
	if err := store.Save(t.Context(), config.DefaultSettings()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !dir.ConfigExists() {
		t.Error("config should exist after Save")
	}

	if err := store.Save(t.Context(), config.DefaultSettings()); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if _, err := os.Stat(dir.PreviousPath()); err != nil {
		t.Errorf("previous settings not kept at %s: %v", dir.PreviousPath(), err)
	}
}
