package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/tuilet/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Extensions lists the file suffixes recognised as font definitions.
var Extensions = []string{".tlf", ".flf"}

// Font identifies a renderer font by name and the directory it lives in.
type Font struct {
	Name string
	Dir  string
}

// Catalog is the sorted set of fonts available for selection.
type Catalog struct {
	Fonts      []Font
	DefaultDir string
	ExtraDirs  []string
}

// Dirs returns every scanned directory, the default one first.
func (c Catalog) Dirs() []string {
	dirs := make([]string, 0, 1+len(c.ExtraDirs))
	if c.DefaultDir != "" {
		dirs = append(dirs, c.DefaultDir)
	}
	return append(dirs, c.ExtraDirs...)
}

// Len returns the number of fonts in the catalog.
func (c Catalog) Len() int {
	return len(c.Fonts)
}

// IndexOf returns the position of font in the catalog, or -1.
func (c Catalog) IndexOf(font Font) int {
	for i, f := range c.Fonts {
		if f == font {
			return i
		}
	}
	return -1
}

// Scan returns the fonts found directly inside dir. Unreadable or missing
// directories yield no fonts; the failure is only traced.
func Scan(dir string) []Font {
	entries, err := os.ReadDir(dir)
	if err != nil {
		events.Font.Scan(dir, 0, err)
		return nil
	}
	found := make([]Font, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := fontName(entry.Name())
		if !ok {
			continue
		}
		found = append(found, Font{Name: name, Dir: dir})
	}
	events.Font.Scan(dir, len(found), nil)
	return found
}

func fontName(file string) (string, bool) {
	base := filepath.Base(file)
	for _, ext := range Extensions {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext), true
		}
	}
	return "", false
}

// Build scans the default directory followed by each extra directory and
// sorts the result case-insensitively by name.
func Build(defaultDir string, extraDirs []string) Catalog {
	all := Scan(defaultDir)
	for _, dir := range extraDirs {
		all = append(all, Scan(dir)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})
	return Catalog{Fonts: all, DefaultDir: defaultDir, ExtraDirs: append([]string(nil), extraDirs...)}
}

// Search returns the fonts whose name contains query, ignoring case, in
// catalog order.
func Search(c Catalog, query string) []Font {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return append([]Font(nil), c.Fonts...)
	}
	matches := make([]Font, 0, len(c.Fonts))
	for _, f := range c.Fonts {
		if strings.Contains(strings.ToLower(f.Name), lower) {
			matches = append(matches, f)
		}
	}
	return matches
}

// BestMatch returns the index of the font that best matches query, or -1
// when nothing matches.
func BestMatch(list []Font, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(list) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, f := range list {
		if strings.EqualFold(f.Name, trimmed) {
			return i
		}
	}
	for i, f := range list {
		if strings.HasPrefix(strings.ToLower(f.Name), lower) {
			return i
		}
	}
	for i, f := range list {
		if strings.Contains(strings.ToLower(f.Name), lower) {
			return i
		}
	}
	names := make([]string, len(list))
	for i, f := range list {
		names[i] = f.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}
