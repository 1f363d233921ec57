package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/tuilet/internal/fonts"
	"github.com/atomicstack/tuilet/internal/logging/events"
	"github.com/atomicstack/tuilet/internal/session"
	"github.com/atomicstack/tuilet/internal/toilet"
	"github.com/atomicstack/tuilet/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotToilet is returned when the configured executable fails verification.
var ErrNotToilet = errors.New("is not a working toilet")

// blinkCursor is switched off by tests driving the model through ui.Harness.
var blinkCursor = true

var runProgram = func(model *ui.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Prepare verifies the renderer, builds the font catalog, and returns a
// session ready for the interactive loop.
func Prepare(ctx context.Context, cfg Config) (*session.Session, error) {
	if !toilet.Verify(ctx, cfg.Toilet, cfg.Timeout) {
		return nil, fmt.Errorf("%s %w", cfg.Toilet, ErrNotToilet)
	}
	defaultDir, err := toilet.DefaultFontDir(ctx, cfg.Toilet, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	catalog := buildCatalog(defaultDir, cfg.FontDirs)
	return session.New(cfg.Toilet, catalog)
}

func buildCatalog(defaultDir string, extra []string) fonts.Catalog {
	catalog := fonts.Build(defaultDir, extra)
	events.Font.Catalog(defaultDir, extra, catalog.Len())
	return catalog
}

// Run bootstraps and executes the Bubble Tea program. The returned string is
// what the caller should print once the terminal is restored.
func Run(ctx context.Context, cfg Config) (string, error) {
	s, err := Prepare(ctx, cfg)
	if err != nil {
		return "", err
	}
	events.App.Start(map[string]interface{}{
		"toilet":     cfg.Toilet,
		"defaultDir": s.Catalog().DefaultDir,
		"fonts":      s.Catalog().Len(),
	})
	defaultDir := s.Catalog().DefaultDir
	model := ui.NewModel(s, ui.Options{
		Executor:    toilet.NewShellExecutor(cfg.Timeout),
		Rescan:      func() fonts.Catalog { return buildCatalog(defaultDir, cfg.FontDirs) },
		Version:     cfg.Version,
		BlinkCursor: blinkCursor,
	})
	if err := runProgram(model); err != nil {
		return "", err
	}
	return model.ExitText(), nil
}
