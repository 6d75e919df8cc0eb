package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Theme    string
	DotColor string
}

// WithPromptConfig returns an Option that asks for the display
// preferences when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.Display.Theme = models.Theme(opts.Theme)
		c.Display.DotColor = opts.DotColor

		return nil
	}
}

// promptUser handles the interactive first-run setup.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Theme:    string(DefaultTheme),
		DotColor: DefaultDotColor,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Darkest", string(models.ThemeDarkest)).Selected(true),
					huh.NewOption("Night", string(models.ThemeNight)),
				).
				Value(&opts.Theme),
			huh.NewInput().
				Title("Accent color").
				Placeholder(DefaultDotColor).
				Value(&opts.DotColor),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	if opts.DotColor == "" {
		opts.DotColor = DefaultDotColor
	}

	return opts, nil
}
