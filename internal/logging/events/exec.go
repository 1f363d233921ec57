package events

import (
	"time"

	"github.com/atomicstack/tuilet/internal/logging"
)

type ExecTracer struct{}

var Exec = ExecTracer{}

func (ExecTracer) Verify(exe string, ok bool, reason string) {
	payload := map[string]interface{}{"exe": exe, "ok": ok}
	if reason != "" {
		payload["reason"] = reason
	}
	logging.Trace("exec.verify", payload)
}

func (ExecTracer) FontDir(exe, dir string, err error) {
	payload := map[string]interface{}{"exe": exe, "dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("exec.fontdir", payload)
}

func (ExecTracer) Run(cmdline string, elapsed time.Duration, err error) {
	payload := map[string]interface{}{"cmdline": cmdline, "elapsedMs": elapsed.Milliseconds()}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("exec.run", payload)
}
