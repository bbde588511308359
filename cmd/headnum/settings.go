package main

import (
	"path/filepath"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/home"
	"github.com/jackzampolin/headnum/internal/numbering"
)

func getHome() (*home.Dir, error) {
	return home.New(homeDir)
}

// settingsPath is the file settings are read from and saved to: --config if
// given, otherwise settings.yaml in the home directory.
func settingsPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	h, err := getHome()
	if err != nil {
		return "", err
	}
	return h.ConfigPath(), nil
}

// loadManager loads settings from the settings file. A file that was never
// saved gives the defaults.
func loadManager() (*config.Manager, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	return config.NewManager(path)
}

func loadSettings() (config.Settings, error) {
	cm, err := loadManager()
	if err != nil {
		return config.Settings{}, err
	}
	return cm.Settings(), nil
}

// loadEngine returns an engine over one settings snapshot, so every document
// in a run is numbered alike.
func loadEngine() (*numbering.Engine, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return numbering.NewEngine(numbering.Static(s)), nil
}

// settingsStore returns the store behind settingsPath. The previous settings
// live next to the settings file.
func settingsStore() (*config.FileStore, error) {
	if cfgFile != "" {
		previous := filepath.Join(filepath.Dir(cfgFile), home.PreviousFileName)
		return config.NewFileStore(cfgFile, previous, logger), nil
	}
	h, err := getHome()
	if err != nil {
		return nil, err
	}
	return h.Store(logger), nil
}
