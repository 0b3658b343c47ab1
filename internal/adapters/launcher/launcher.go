// Package launcher opens services with the host's default handler.
package launcher

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Launcher = (*Launcher)(nil)

const (
	darwinOpener = "open"
	xdgOpener    = "xdg-open"
)

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	logger ports.Logger
	goos   string
	opener string
}

// New creates a Launcher for the running platform.
func New(logger ports.Logger) *Launcher {
	return NewForOS(logger, runtime.GOOS)
}

// NewForOS creates a Launcher that behaves as it would on goos.
func NewForOS(logger ports.Logger, goos string) *Launcher {
	return &Launcher{logger: logger, goos: goos}
}

// WithOpener replaces the platform open command. An empty name keeps the default.
func (l *Launcher) WithOpener(name string) *Launcher {
	l.opener = name
	return l
}

// Command returns the program and arguments that open id.
// On darwin, reveal selects the item in Finder. Elsewhere the containing
// directory is opened instead.
func (l *Launcher) Command(id string, reveal bool) (string, []string) {
	if l.goos == "darwin" {
		name := l.openerOr(darwinOpener)
		if reveal {
			return name, []string{"-R", id}
		}
		return name, []string{id}
	}

	name := l.openerOr(xdgOpener)
	if reveal {
		return name, []string{filepath.Dir(id)}
	}
	return name, []string{id}
}

func (l *Launcher) openerOr(fallback string) string {
	if l.opener != "" {
		return l.opener
	}
	return fallback
}

// Launch runs the open command for id and waits for it to exit.
func (l *Launcher) Launch(ctx context.Context, id string, reveal bool) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrEmptyID
	}

	name, args := l.Command(id, reveal)
	l.logger.Debug("launching", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // id comes from a search result
	cmd.Stdout = &logWriter{logger: l.logger, stderr: false}
	cmd.Stderr = &logWriter{logger: l.logger, stderr: true}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "id", id)
		return zerr.With(zerr.With(err, "command", name), "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards command output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	stderr bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.stderr {
			w.logger.Warn(line)
		} else {
			w.logger.Debug(line)
		}
	}
	return len(p), nil
}
