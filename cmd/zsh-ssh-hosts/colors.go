package main

import (
	"os"

	"github.com/tony-sol/zsh-ssh/pkgs/hostlist"
)

// Re-export color constants from hostlist for convenience
const (
	ColorRed    = hostlist.ColorRed
	ColorYellow = hostlist.ColorYellow
	ColorGray   = hostlist.ColorGray
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	return hostlist.Colorize(text, color, useColor)
}

// ShouldUseColor determines if color output should be used
// Respects --no-color flag and NO_COLOR environment variable
func ShouldUseColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
