// Package persistence keeps demo settings between runs.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/tidewalker/components"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// Settings represents the settings data stored on disk
type Settings struct {
	ShowDebug bool   `json:"showDebug"`
	LastLevel string `json:"lastLevel"`
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes settings. A nil *Store is valid and stores
// nothing, so the game runs when the data directory is unavailable.
type Store struct {
	items  itemStore
	logger *zap.Logger
}

// Open initializes the gdata manager for appName.
func Open(appName string, logger *zap.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return newStore(m, logger), nil
}

func newStore(items itemStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{items: items, logger: logger}
}

// LoadSettings returns the saved settings. ok is false when nothing has
// been saved yet.
func (s *Store) LoadSettings() (settings Settings, ok bool, err error) {
	if s == nil {
		return Settings{}, false, nil
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		s.logger.Warn("could not load settings", zap.Error(err))
		return Settings{}, false, nil
	}
	if len(data) == 0 {
		return Settings{}, false, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("could not parse saved settings", zap.Error(err))
		return Settings{}, false, fmt.Errorf("parse settings: %w", err)
	}
	return settings, true, nil
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings Settings) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		s.logger.Warn("could not save settings", zap.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}
	s.logger.Debug("settings saved", zap.String("last_level", settings.LastLevel))
	return nil
}

// FromComponent captures the live settings.
func FromComponent(c *components.SettingsData) Settings {
	return Settings{ShowDebug: c.ShowDebug, LastLevel: c.LastLevel}
}

// Apply copies saved settings onto the live component.
func (s Settings) Apply(c *components.SettingsData) {
	c.ShowDebug = s.ShowDebug
	if s.LastLevel != "" {
		c.LastLevel = s.LastLevel
	}
}
