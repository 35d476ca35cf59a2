// Package hooks runs the user supplied shell commands around a toggle.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/safedep/dry/log"
)

// DefaultShell interprets hook command lines.
const DefaultShell = "/bin/sh"

// Runner runs a hook command line and reports its exit status.
type Runner interface {
	// Run blocks until the command finishes. The returned error is set only
	// when the command could not be started at all; a command that ran and
	// failed reports a nonzero status with a nil error.
	Run(ctx context.Context, command string) (int, error)
}

type ShellRunnerConfig struct {
	Shell  string
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultShellRunnerConfig() ShellRunnerConfig {
	return ShellRunnerConfig{
		Shell:  DefaultShell,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ShellRunner runs each command line through `<shell> -c`, sharing the
// terminal with sigtoggle.
type ShellRunner struct {
	config ShellRunnerConfig
}

var _ Runner = (*ShellRunner)(nil)

func NewShellRunner(config ShellRunnerConfig) *ShellRunner {
	if config.Shell == "" {
		config.Shell = DefaultShell
	}

	return &ShellRunner{config: config}
}

func (r *ShellRunner) Run(ctx context.Context, command string) (int, error) {
	if command == "" {
		return 0, nil
	}

	log.Debugf("Running hook with %s: %s", r.config.Shell, command)

	cmd := exec.CommandContext(ctx, r.config.Shell, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = r.config.Stdout
	cmd.Stderr = r.config.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()

		// Killed by a signal, there is no exit code to report.
		if status < 0 {
			status = 128
		}

		log.Debugf("Hook exited with status %d: %s", status, command)
		return status, nil
	}

	return -1, fmt.Errorf("failed to start hook %q: %w", command, err)
}

// Func adapts a function to the Runner interface.
type Func func(ctx context.Context, command string) (int, error)

var _ Runner = Func(nil)

func (f Func) Run(ctx context.Context, command string) (int, error) {
	return f(ctx, command)
}
