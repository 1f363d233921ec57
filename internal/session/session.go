package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tuilet/internal/cmdline"
	"github.com/atomicstack/tuilet/internal/fonts"
	"github.com/atomicstack/tuilet/internal/logging/events"
	"github.com/atomicstack/tuilet/internal/toilet"
)

// ErrEmptyCatalog is returned when no fonts could be discovered.
var ErrEmptyCatalog = errors.New("no fonts found")

// Session owns the user-editable state and the outputs derived from it.
type Session struct {
	executable string
	catalog    fonts.Catalog
	index      int

	input string
	flags string
	width int

	display    string
	copyOutput string
	preview    string
	err        error
}

// Result carries the outputs of one execution round.
type Result struct {
	Lines      cmdline.Lines
	Preview    string
	CopyOutput string
	Err        error
}

// New creates a session over catalog. The catalog must not be empty.
func New(executable string, catalog fonts.Catalog) (*Session, error) {
	if catalog.Len() == 0 {
		return nil, emptyCatalogError(catalog)
	}
	return &Session{executable: executable, catalog: catalog}, nil
}

func emptyCatalogError(catalog fonts.Catalog) error {
	return fmt.Errorf("%w in %s", ErrEmptyCatalog, strings.Join(catalog.Dirs(), ", "))
}

// Executable returns the renderer path.
func (s *Session) Executable() string { return s.executable }

// Catalog returns the font catalog.
func (s *Session) Catalog() fonts.Catalog { return s.catalog }

// Index returns the selected font position.
func (s *Session) Index() int { return s.index }

// Font returns the selected font.
func (s *Session) Font() fonts.Font {
	return s.catalog.Fonts[s.index]
}

// NextFont selects the following font, wrapping at the end.
func (s *Session) NextFont() fonts.Font {
	s.index = (s.index + 1) % s.catalog.Len()
	return s.selected()
}

// PrevFont selects the preceding font, wrapping at the start.
func (s *Session) PrevFont() fonts.Font {
	n := s.catalog.Len()
	s.index = (s.index + n - 1) % n
	return s.selected()
}

// SelectFont selects the font at i, clamped into range.
func (s *Session) SelectFont(i int) fonts.Font {
	if i < 0 {
		i = 0
	}
	if i >= s.catalog.Len() {
		i = s.catalog.Len() - 1
	}
	s.index = i
	return s.selected()
}

func (s *Session) selected() fonts.Font {
	f := s.Font()
	events.Font.Select(f.Name, f.Dir, s.index)
	return f
}

// Rescan replaces the catalog, keeping the selected font when it survives.
// An empty replacement is rejected and the current catalog is kept.
func (s *Session) Rescan(catalog fonts.Catalog) error {
	if catalog.Len() == 0 {
		return emptyCatalogError(catalog)
	}
	events.Font.Rescan(s.catalog.Len(), catalog.Len())
	current := s.Font()
	s.catalog = catalog
	if idx := catalog.IndexOf(current); idx >= 0 {
		s.index = idx
	} else {
		s.index %= catalog.Len()
	}
	return nil
}

// Input returns the raw input text.
func (s *Session) Input() string { return s.input }

// Flags returns the raw flags text.
func (s *Session) Flags() string { return s.flags }

// Width returns the terminal width used for the preview.
func (s *Session) Width() int { return s.width }

// SetInput replaces the raw input text.
func (s *Session) SetInput(text string) { s.input = text }

// SetFlags replaces the raw flags text.
func (s *Session) SetFlags(text string) { s.flags = text }

// SetWidth records the terminal width. Negative values are treated as unknown.
func (s *Session) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	s.width = width
}

// Lines derives both command lines from the current state.
func (s *Session) Lines() cmdline.Lines {
	return cmdline.Build(cmdline.Params{
		Executable: s.executable,
		Font:       s.Font(),
		DefaultDir: s.catalog.DefaultDir,
		Flags:      s.flags,
		Input:      s.input,
		Width:      s.width,
	})
}

// Display returns the display command line of the last applied round.
func (s *Session) Display() string { return s.display }

// Preview returns the last good preview output.
func (s *Session) Preview() string { return s.preview }

// CopyOutput returns the last good output of the display command line.
func (s *Session) CopyOutput() string { return s.copyOutput }

// Err returns the error from the last execution round, if any.
func (s *Session) Err() error { return s.err }

// Run executes lines with exec. It does not touch the session so it can run
// off the UI goroutine.
func Run(ctx context.Context, exec toilet.Executor, lines cmdline.Lines) Result {
	res := Result{Lines: lines}
	out, err := exec.Run(ctx, lines.Exec)
	if err != nil {
		res.Err = fmt.Errorf("preview: %w", err)
		return res
	}
	res.Preview = trimOutput(out)
	if lines.Display == lines.Exec {
		res.CopyOutput = out
		return res
	}
	copyOut, err := exec.Run(ctx, lines.Display)
	if err != nil {
		res.Err = fmt.Errorf("copy output: %w", err)
		return res
	}
	res.CopyOutput = copyOut
	return res
}

// Apply commits res together with the display line it was derived from.
// On failure the previous outputs are kept.
func (s *Session) Apply(res Result) {
	s.display = res.Lines.Display
	if res.Err != nil {
		s.err = res.Err
		if res.Preview != "" {
			s.preview = res.Preview
		}
		return
	}
	s.err = nil
	s.preview = res.Preview
	s.copyOutput = res.CopyOutput
}

// Tick re-derives the command lines, runs them and stores the outcome.
func (s *Session) Tick(ctx context.Context, exec toilet.Executor) Result {
	res := Run(ctx, exec, s.Lines())
	s.Apply(res)
	return res
}

func trimOutput(out string) string {
	return strings.TrimRight(out, "\r\n")
}
