package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes environment overrides, e.g. HEADNUM_DEPTH=3.
const EnvPrefix = "HEADNUM"

// Manager handles loading and hot-reloading settings.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	settings  *Settings
	callbacks []func(*Settings)
}

// NewManager creates a new settings manager and loads the initial settings.
// An empty cfgFile searches ./settings.yaml and $HOME/.headnum/settings.yaml;
// a missing file is not an error.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Settings), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	s, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.settings = s

	return cm, nil
}

// initViper sets up viper with defaults and the settings file.
func (cm *Manager) initViper(cfgFile string) error {
	v := cm.v
	defaults := DefaultSettings()
	v.SetDefault("start_level", defaults.StartLevel)
	v.SetDefault("depth", defaults.Depth)
	v.SetDefault("prepend_parent_number", defaults.PrependParentNumber)
	v.SetDefault("remove_existing", defaults.RemoveExisting)
	v.SetDefault("auto_generate", defaults.AutoGenerate)
	v.SetDefault("debounce", defaults.Debounce)
	v.SetDefault("levels", defaults.Levels)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("settings")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.headnum")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading settings file: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		data, err := os.ReadFile(used)
		if err != nil {
			return fmt.Errorf("error reading settings file: %w", err)
		}
		if err := ValidateDocument(data); err != nil {
			return err
		}
	}
	return nil
}

// load parses the current viper state into Settings.
func (cm *Manager) load() (*Settings, error) {
	var s Settings
	if err := cm.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s.Normalize(), nil
}

// Get returns a snapshot of the current settings (thread-safe). The snapshot
// is a deep copy; later reloads do not affect it.
func (cm *Manager) Get() *Settings {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.settings.Clone()
}

// Settings returns a snapshot by value.
func (cm *Manager) Settings() Settings {
	return *cm.Get()
}

// FileUsed returns the settings file that was read, if any.
func (cm *Manager) FileUsed() string {
	return cm.v.ConfigFileUsed()
}

// OnChange registers a callback for settings changes.
func (cm *Manager) OnChange(fn func(*Settings)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of the settings file.
func (cm *Manager) WatchConfig() {
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		s, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.settings = s
		callbacks := make([]func(*Settings), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(s.Clone())
		}
	})
	cm.v.WatchConfig()
}

// WriteDefault writes the default settings to the specified path.
func WriteDefault(path string) error {
	s := DefaultSettings()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	header := []byte(`# headnum settings
# style: 1 (arabic), a / A (letters), i / I (roman), 一 (chinese), ① (circled)
# display_format: {} is replaced by the numeral, e.g. "({})" or "第{}章"
# separator: appended between this level and the next ("" for none)

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
