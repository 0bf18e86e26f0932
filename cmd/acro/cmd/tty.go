package cmd

import (
	"os"

	"github.com/corey/acro/internal/app"
	"github.com/mattn/go-isatty"
)

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveColor determines whether to use color output based on flags and TTY status.
// mode is the --color value: "auto", "always", or "never".
// noColor is the --no-color boolean flag.
func resolveColor(mode string, noColor bool) bool {
	if noColor {
		return false
	}
	switch mode {
	case app.ColorAlways:
		return true
	case app.ColorNever:
		return false
	default: // "auto"
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return isStdoutTTY()
	}
}
