// Package config is responsible for the program's configuration,
// derived from the config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Display  DisplayConfig
		Settings SettingsConfig
		System   SystemConfig
	}

	// DisplayConfig holds presentation settings
	DisplayConfig struct {
		Theme    models.Theme
		DotColor string
	}

	// SettingsConfig holds behavior settings
	SettingsConfig struct {
		// Notify enables a desktop notification when a tracker is
		// saved.
		Notify bool
		// SaveCmd is an optional shell command executed after a
		// tracker is saved.
		SaveCmd string
	}

	// SystemConfig holds file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.2.0"

const (
	DefaultTheme    = models.ThemeDarkest
	DefaultDotColor = "#0fffc3"
)

var (
	configDir      = "tracker"
	configFileName = "config.yml"
	dbFileName     = "tracker.db"
	logFileName    = "tracker.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func LogFilePath() string {
	return logFilePath
}

func InitializePaths() {
	trackerEnv := strings.TrimSpace(os.Getenv("TRACKER_ENV"))
	if trackerEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", trackerEnv)
		dbFileName = fmt.Sprintf("tracker_%s.db", trackerEnv)
		logFileName = fmt.Sprintf("tracker_%s.log", trackerEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Display: DisplayConfig{
			Theme:    DefaultTheme,
			DotColor: DefaultDotColor,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	if !cfg.Display.Theme.Valid() {
		cfg.Display.Theme = DefaultTheme
	}

	return cfg, nil
}
