package main

import (
	"io"
	"os"
	"path/filepath"

	hlerrors "github.com/tony-sol/zsh-ssh/pkgs/errors"
)

const stdinName = "-"

// inputSource resolves the --file flag to a concrete source:
// 1. Explicit stdin with -f -
// 2. Piped input (auto-detected when no file is given)
// 3. File input (given path, or ~/.ssh/config)
func (a *app) inputSource() (string, error) {
	if a.file != "" {
		return a.file, nil
	}
	if a.stdinPiped() {
		return stdinName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", hlerrors.NewInputError("~/.ssh/config", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// openInput returns a reader for source and a function to close it.
func (a *app) openInput(source string) (io.Reader, func() error, error) {
	if source == stdinName {
		return a.stdin, func() error { return nil }, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, nil, hlerrors.NewFileNotFoundError(source, err)
	}
	return f, f.Close, nil
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	// Pipes may not report a size, so only the mode is checked.
	return (stat.Mode() & os.ModeCharDevice) == 0
}
