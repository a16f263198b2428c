package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	hlerrors "github.com/tony-sol/zsh-ssh/pkgs/errors"
	"github.com/tony-sol/zsh-ssh/pkgs/hostlist"
	"github.com/tony-sol/zsh-ssh/pkgs/resolver"
	"github.com/tony-sol/zsh-ssh/pkgs/watch"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries flag values and the process streams.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stdinPiped func() bool
	useColor   func(noColor bool) bool

	file          string
	filter        string
	format        string
	watch         bool
	noDiagnostics bool
	debug         bool
	noColor       bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		stdinPiped: hasPipedInput,
		useColor:   ShouldUseColor,
		format:     formatText,
	}
}

func (a *app) run(ctx context.Context) error {
	if a.format != formatText && a.format != formatYAML {
		return &CLIError{
			Type:    "usage",
			Message: fmt.Sprintf("unsupported format '%s'", a.format),
			Hint:    "Use --format text or --format yaml",
		}
	}

	source, err := a.inputSource()
	if err != nil {
		return err
	}

	logger := resolver.NewLogger(a.stderr, a.debug || resolver.DebugFromEnv())
	useColor := a.useColor(a.noColor)

	if !a.watch {
		_, err := a.emit(source, logger, useColor, "")
		return err
	}

	if source == stdinName {
		return &CLIError{
			Type:    "usage",
			Message: "--watch needs a config file, not stdin",
			Hint:    "Pass the file to watch with --file <path>",
		}
	}

	var last string
	w := watch.New(source, logger)
	return w.Run(ctx, func() error {
		digest, err := a.emit(source, logger, useColor, last)
		if err != nil {
			return err
		}
		last = digest
		return nil
	})
}

// emit resolves source and writes the host list unless its digest equals
// previous. It returns the digest of the list it resolved.
func (a *app) emit(source string, logger *slog.Logger, useColor bool, previous string) (string, error) {
	reader, closeFunc, err := a.openInput(source)
	if err != nil {
		return "", err
	}
	defer func() { _ = closeFunc() }()

	res, err := resolver.Resolve(reader, resolver.WithLogger(logger))
	if err != nil {
		return "", hlerrors.NewInputError(source, err)
	}

	list := hostlist.New(res).Filter(a.filter)

	digest, err := list.Digest()
	if err != nil {
		return "", hlerrors.Wrap(hlerrors.ErrEncode, "failed to compute host list digest", err)
	}
	if digest == previous {
		logger.Debug("host list unchanged", "digest", digest)
		return digest, nil
	}

	if a.format == formatYAML {
		out, err := list.YAML()
		if err != nil {
			return "", hlerrors.Wrap(hlerrors.ErrEncode, "failed to render YAML", err)
		}
		if _, err := a.stdout.Write(out); err != nil {
			return "", hlerrors.NewOutputError("stdout", err)
		}
		return digest, nil
	}

	if err := list.WriteLines(a.stdout, useColor); err != nil {
		return "", hlerrors.NewOutputError("stdout", err)
	}
	if !a.noDiagnostics {
		if err := list.WriteDiagnostics(a.stderr); err != nil {
			return "", hlerrors.NewOutputError("stderr", err)
		}
	}
	return digest, nil
}
