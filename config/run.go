package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// RunConfig is the demo's startup configuration, read from TOML.
type RunConfig struct {
	Window      WindowConfig      `toml:"window"`
	Level       LevelConfig       `toml:"level"`
	Tuning      string            `toml:"tuning"` // optional YAML tuning override
	Logging     LoggingConfig     `toml:"logging"`
	Persistence PersistenceConfig `toml:"persistence"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`
	Title  string `toml:"title"`
}

type LevelConfig struct {
	// Dir is a directory on disk holding .tmx files. Empty means the
	// levels embedded in the binary.
	Dir   string `toml:"dir"`
	Name  string `toml:"name"`
	Watch bool   `toml:"watch"` // reload on file change; requires Dir
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type PersistenceConfig struct {
	AppName string `toml:"app_name"`
}

// LoadRun reads a TOML run configuration. A missing file yields the
// defaults.
func LoadRun(path string) (*RunConfig, error) {
	cfg := defaultRun()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultRun() *RunConfig {
	return &RunConfig{
		Window: WindowConfig{
			Width:  C.Width,
			Height: C.Height,
			Scale:  2,
			Title:  "tidewalker",
		},
		Level: LevelConfig{
			Name: "lagoon",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Persistence: PersistenceConfig{
			AppName: "tidewalker",
		},
	}
}
