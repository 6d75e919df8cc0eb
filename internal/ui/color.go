package ui

import (
	"github.com/pterm/pterm"

	"github.com/AlekseyPolishchuk/time-tracker/internal/models"
)

// Theme selects the palette used by the non-interactive commands. The
// night theme maps to the lighter pterm variants.
var Theme = models.ThemeDarkest

func night() bool {
	return Theme == models.ThemeNight
}

func Green(a any) string {
	if night() {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if night() {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if night() {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if night() {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if night() {
		return pterm.LightWhite(a)
	}

	return pterm.Bold.Sprint(a)
}
