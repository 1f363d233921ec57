package toilet

import (
	"context"
	"time"

	"github.com/atomicstack/tuilet/internal/logging/events"
)

// Executor runs a complete shell command line and returns its stdout.
type Executor interface {
	Run(ctx context.Context, cmdline string) (string, error)
}

// ShellExecutor runs command lines through a POSIX shell so quoting behaves
// exactly as the displayed command line suggests.
type ShellExecutor struct {
	Shell   string
	Timeout time.Duration

	throttle *throttle
}

// spawnInterval is the minimum gap between two shell spawns.
const spawnInterval = 20 * time.Millisecond

// NewShellExecutor returns an executor using sh with the given timeout.
func NewShellExecutor(timeout time.Duration) *ShellExecutor {
	return &ShellExecutor{Shell: "sh", Timeout: timeout, throttle: newThrottle(spawnInterval)}
}

// Run implements Executor.
func (e *ShellExecutor) Run(ctx context.Context, cmdline string) (string, error) {
	shell := e.Shell
	if shell == "" {
		shell = "sh"
	}
	if err := e.throttle.wait(ctx); err != nil {
		return "", err
	}
	start := time.Now()
	out, err := output(ctx, e.Timeout, shell, "-c", cmdline)
	events.Exec.Run(cmdline, time.Since(start), err)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
