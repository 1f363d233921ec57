package toilet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tuilet/internal/logging/events"
)

const verifyWord = "hello"

// Verify reports whether exe behaves like toilet by asking it to render a
// plain word with the term font. Any failure yields false.
func Verify(ctx context.Context, exe string, timeout time.Duration) bool {
	out, err := output(ctx, timeout, exe, "-f", "term", verifyWord)
	if err != nil {
		events.Exec.Verify(exe, false, err.Error())
		return false
	}
	got := strings.TrimSpace(string(out))
	if got != verifyWord {
		events.Exec.Verify(exe, false, fmt.Sprintf("unexpected output %q", got))
		return false
	}
	events.Exec.Verify(exe, true, "")
	return true
}

// DefaultFontDir asks exe for its built-in font directory.
func DefaultFontDir(ctx context.Context, exe string, timeout time.Duration) (string, error) {
	out, err := output(ctx, timeout, exe, "-I", "2")
	if err != nil {
		events.Exec.FontDir(exe, "", err)
		return "", fmt.Errorf("query font directory: %w", err)
	}
	dir := strings.TrimSpace(string(out))
	if dir == "" {
		err := fmt.Errorf("query font directory: %s printed nothing for -I 2", exe)
		events.Exec.FontDir(exe, "", err)
		return "", err
	}
	events.Exec.FontDir(exe, dir, nil)
	return dir, nil
}
