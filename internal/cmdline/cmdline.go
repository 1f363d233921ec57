// Package cmdline assembles toilet command lines from the session state.
//
// Two lines are produced for every state. The display line is what the user
// would type and is the copy target. The exec line is what tuilet runs to
// fill the preview: it shares the display prefix but pins --width to the
// terminal unless the user already supplied one.
//
// Only the input text is escaped. Flags are a trusted shell fragment typed by
// the local user, so `-w 40; date` runs both commands. The font name and
// directory come from the catalog and are quoted but not escaped.
package cmdline

import (
	"strconv"
	"strings"

	"github.com/atomicstack/tuilet/internal/fonts"
)

// WidthFlag is the renderer option that caps output width.
const WidthFlag = "--width"

// borderColumns is subtracted from the terminal width for the preview frame.
const borderColumns = 2

// Params is the subset of session state the command lines depend on.
type Params struct {
	Executable string
	Font       fonts.Font
	DefaultDir string
	Flags      string
	Input      string
	Width      int
}

// Lines holds the two command lines derived from one state.
type Lines struct {
	Display string
	Exec    string
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape prepares text for use inside a double-quoted shell word.
// Backslashes are doubled first so the quotes' escapes stay single.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Quote returns text escaped and wrapped in double quotes.
func Quote(text string) string {
	return `"` + Escape(text) + `"`
}

// Build derives the display and exec command lines for p.
func Build(p Params) Lines {
	var prefix strings.Builder
	prefix.WriteString(p.Executable)
	if p.Flags != "" {
		prefix.WriteByte(' ')
		prefix.WriteString(p.Flags)
	}
	prefix.WriteString(` -f "`)
	prefix.WriteString(p.Font.Name)
	prefix.WriteByte('"')
	if p.Font.Dir != p.DefaultDir {
		prefix.WriteString(` -d "`)
		prefix.WriteString(p.Font.Dir)
		prefix.WriteByte('"')
	}
	head := prefix.String()
	text := " " + Quote(p.Input)

	execHead := head
	if width, ok := previewWidth(p); ok {
		execHead += " " + WidthFlag + " " + strconv.Itoa(width)
	}
	return Lines{
		Display: head + text,
		Exec:    execHead + text,
	}
}

func previewWidth(p Params) (int, bool) {
	if p.Width <= 0 || strings.Contains(p.Flags, WidthFlag) {
		return 0, false
	}
	return p.Width - borderColumns, true
}
