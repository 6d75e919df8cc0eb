package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

const (
	keyTheme    = "display.theme"
	keyDotColor = "display.dot_color"
	keyNotify   = "settings.notify"
	keySaveCmd  = "settings.save_cmd"
)

// WithViperConfig returns an Option that loads configuration from the
// YAML config file, writing one with the defaults on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Seed defaults from the current config so first-run prompt
		// answers end up in the written file.
		v.SetDefault(keyTheme, string(c.Display.Theme))
		v.SetDefault(keyDotColor, c.Display.DotColor)
		v.SetDefault(keyNotify, false)
		v.SetDefault(keySaveCmd, "")

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("reading config file failed: %w", err)
			}

			if err := v.WriteConfig(); err != nil {
				return fmt.Errorf("writing default config failed: %w", err)
			}
		}

		c.Display.Theme = models.Theme(v.GetString(keyTheme))
		c.Display.DotColor = v.GetString(keyDotColor)
		c.Settings.Notify = v.GetBool(keyNotify)
		c.Settings.SaveCmd = v.GetString(keySaveCmd)
		c.System.ConfigPath = configPath

		return nil
	}
}
