package app

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tuilet/internal/session"
	"github.com/atomicstack/tuilet/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "toilet")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// fakeToilet answers -I 2 with fontDir and echoes its last argument.
func fakeToilet(t *testing.T, fontDir string) string {
	t.Helper()
	return writeScript(t, `if [ "$1" = "-I" ]; then echo `+fontDir+`; exit 0; fi
eval last=\${$#}
echo "$last"`)
}

func fontDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write font: %v", err)
		}
	}
	return dir
}

func withStubProgram(t *testing.T, fn func(*ui.Model) error) {
	t.Helper()
	orig, origBlink := runProgram, blinkCursor
	runProgram = fn
	blinkCursor = false
	t.Cleanup(func() {
		runProgram = orig
		blinkCursor = origBlink
	})
}

func TestPrepareRejectsBrokenToilet(t *testing.T) {
	exe := writeScript(t, "echo nope")
	_, err := Prepare(context.Background(), Config{Toilet: exe, Timeout: 2 * time.Second})
	if !errors.Is(err, ErrNotToilet) {
		t.Fatalf("expected ErrNotToilet, got %v", err)
	}
	if !strings.Contains(err.Error(), exe) {
		t.Fatalf("expected error to name %s, got %v", exe, err)
	}
}

func TestPrepareRejectsMissingToilet(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-toilet")
	if _, err := Prepare(context.Background(), Config{Toilet: missing, Timeout: time.Second}); !errors.Is(err, ErrNotToilet) {
		t.Fatalf("expected ErrNotToilet, got %v", err)
	}
}

func TestPrepareRejectsEmptyCatalog(t *testing.T) {
	empty := fontDir(t, "README")
	exe := fakeToilet(t, empty)
	_, err := Prepare(context.Background(), Config{Toilet: exe, Timeout: 2 * time.Second})
	if !errors.Is(err, session.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestPrepareMergesExtraDirs(t *testing.T) {
	builtin := fontDir(t, "mono9.tlf", "big.flf")
	extra := fontDir(t, "Alpha.tlf", "notes.txt")
	exe := fakeToilet(t, builtin)

	s, err := Prepare(context.Background(), Config{Toilet: exe, FontDirs: []string{extra}, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("Prepare returned error: %v", err)
	}
	var names []string
	for _, f := range s.Catalog().Fonts {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "Alpha,big,mono9" {
		t.Fatalf("unexpected catalog order %s", got)
	}
	if s.Catalog().DefaultDir != builtin {
		t.Fatalf("expected default dir %s, got %s", builtin, s.Catalog().DefaultDir)
	}
}

func TestRunReturnsExitText(t *testing.T) {
	builtin := fontDir(t, "big.flf")
	exe := fakeToilet(t, builtin)
	withStubProgram(t, func(m *ui.Model) error {
		h := ui.NewHarness(m)
		h.Type("hi")
		h.Press(tea.KeyCtrlC)
		return nil
	})

	out, err := Run(context.Background(), Config{Toilet: exe, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := exe + ` -f "big" "hi"`; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRunPropagatesProgramError(t *testing.T) {
	builtin := fontDir(t, "big.flf")
	exe := fakeToilet(t, builtin)
	boom := errors.New("tty gone")
	withStubProgram(t, func(*ui.Model) error { return boom })

	if _, err := Run(context.Background(), Config{Toilet: exe, Timeout: 2 * time.Second}); !errors.Is(err, boom) {
		t.Fatalf("expected program error, got %v", err)
	}
}
