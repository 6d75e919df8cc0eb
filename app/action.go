package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/AlekseyPolishchuk/time-tracker/internal/config"
	"github.com/AlekseyPolishchuk/time-tracker/internal/ui"
	"github.com/AlekseyPolishchuk/time-tracker/stats"
	"github.com/AlekseyPolishchuk/time-tracker/store"
	"github.com/AlekseyPolishchuk/time-tracker/timer"
)

var appConfig *config.Config

// initConfig loads the configuration, prompting for display
// preferences on the very first run of the interactive widget.
func initConfig(prompt bool) error {
	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(config.ConfigFilePath()))
	}

	opts = append(opts, config.WithViperConfig(config.ConfigFilePath()))

	cfg, err := config.New(opts...)
	if err != nil {
		return err
	}

	appConfig = cfg
	ui.Theme = cfg.Display.Theme

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()
	config.InitLogging()

	if ctx.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		disableStyling()
	}

	return nil
}

// openStore opens the database and loads the persisted snapshot. When
// the database cannot be opened for any reason other than a concurrent
// instance, the store degrades to in-memory operation.
func openStore() (*store.Store, func(), error) {
	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		if errors.Is(err, store.ErrAlreadyRunning) {
			return nil, nil, err
		}

		pterm.Warning.Printfln(
			"Persistence unavailable (%v): changes will not be saved",
			err,
		)

		return store.New(nil), func() {}, nil
	}

	return store.New(client), func() { _ = client.Close() }, nil
}

// defaultAction launches the interactive widget.
func defaultAction(ctx *cli.Context) error {
	if err := initConfig(true); err != nil {
		return err
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	return timer.Run(s, appConfig)
}

func statsAction(ctx *cli.Context) error {
	if err := initConfig(false); err != nil {
		return err
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	now := time.Now()

	if since := ctx.String("since"); since != "" {
		parsed, err := dateparser.Parse(nil, since)
		if err != nil {
			return fmt.Errorf("unable to parse --since value %q: %w", since, err)
		}

		now = parsed.Time
	}

	stats.Show(os.Stdout, s.Snapshot().Trackers, now)

	return nil
}

func editConfigAction(ctx *cli.Context) error {
	config.InitializePaths()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
