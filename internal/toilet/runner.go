package toilet

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

var (
	// ErrTimeout reports that a child process was killed after exceeding its deadline.
	ErrTimeout = errors.New("timed out")
	// ErrSpawn reports that a child process could not be started.
	ErrSpawn = errors.New("could not start")
)

// DefaultTimeout bounds every renderer invocation unless configured otherwise.
const DefaultTimeout = 5 * time.Second

// waitDelay bounds how long Output waits for inherited pipes after the
// direct child has been killed.
const waitDelay = 500 * time.Millisecond

type commander interface {
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var runExecCommand = func(ctx context.Context, name string, args ...string) commander {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	return realCommander{cmd: cmd}
}

// output runs name with args under timeout and returns stdout. A non-zero
// exit status is not an error; only the stdout of the child is consumed.
func output(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runExecCommand(ctx, name, args...).Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return out, fmt.Errorf("%s %w after %s", name, ErrTimeout, timeout)
		}
		return out, ctxErr
	}
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return out, fmt.Errorf("%s %w: %v", name, ErrSpawn, err)
}
