package events

import "github.com/atomicstack/tuilet/internal/logging"

type UITracer struct{}

type PreviewTracer struct{}

var (
	UI      = UITracer{}
	Preview = PreviewTracer{}
)

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Quit(reason string) {
	logging.Trace("ui.quit", map[string]interface{}{"reason": reason})
}

func (PreviewTracer) Queue(seq int, cmdline string) {
	logging.Trace("preview.queue", map[string]interface{}{"seq": seq, "cmdline": cmdline})
}

func (PreviewTracer) Stale(seq, current int) {
	logging.Trace("preview.stale", map[string]interface{}{"seq": seq, "current": current})
}

func (PreviewTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("preview.error", map[string]interface{}{"error": err.Error()})
}
