package events

import "github.com/atomicstack/tuilet/internal/logging"

type FontTracer struct{}

var Font = FontTracer{}

func (FontTracer) Scan(dir string, count int, err error) {
	payload := map[string]interface{}{"dir": dir, "count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("font.scan", payload)
}

func (FontTracer) Catalog(defaultDir string, extra []string, count int) {
	logging.Trace("font.catalog", map[string]interface{}{
		"defaultDir": defaultDir,
		"extraDirs":  extra,
		"count":      count,
	})
}

func (FontTracer) Select(name, dir string, index int) {
	logging.Trace("font.select", map[string]interface{}{"name": name, "dir": dir, "index": index})
}

func (FontTracer) Rescan(before, after int) {
	logging.Trace("font.rescan", map[string]interface{}{"before": before, "after": after})
}
