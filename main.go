package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atomicstack/tuilet/internal/app"
	"github.com/atomicstack/tuilet/internal/config"
	"github.com/atomicstack/tuilet/internal/logging"
	"github.com/atomicstack/tuilet/internal/logging/events"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// errNoTerminal is returned when tuilet is started without an interactive terminal.
var errNoTerminal = errors.New("stdin and stdout must be a terminal")

// configError marks failures that exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var runApp = app.Run

func main() {
	cmd := newRootCommand(os.Args[1:], os.Environ(), os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

func exitCode(err error, stderr io.Writer) int {
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cfgErr.err)
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCommand(args, environ []string, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tuilet",
		Short:         "Interactive editor for toilet banners",
		Long:          "tuilet previews toilet output while you edit the text, font and flags, then prints the matching command line.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	flags := config.Register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		runtimeCfg, err := flags.Resolve(cmd.Flags(), environ, args)
		if err != nil {
			return configError{err}
		}
		if err := config.Validate(runtimeCfg); err != nil {
			return configError{err}
		}
		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

		traceStartup(runtimeCfg)

		if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
			return errNoTerminal
		}

		runtimeCfg.App.Version = version
		out, err := runApp(cmd.Context(), runtimeCfg.App)
		if err != nil {
			logging.Error(err)
			return err
		}
		if out != "" {
			fmt.Fprintln(stdout, out)
		}
		return nil
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["renderer"] = rendererDetails(cfg)
	payload["tty"] = collectTTYDetails()
	return payload
}

// rendererDetails records how the toilet executable and font directories
// were resolved.
func rendererDetails(cfg config.Config) map[string]interface{} {
	details := map[string]interface{}{
		"toilet":   cfg.App.Toilet,
		"fontDirs": cfg.App.FontDirs,
		"timeout":  cfg.App.Timeout.String(),
		"config":   cfg.File,
	}
	if path, err := exec.LookPath(cfg.App.Toilet); err == nil {
		details["toiletPath"] = path
	} else {
		details["toiletError"] = err.Error()
	}
	return details
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Cygwin     bool   `json:"cygwin,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name, Cygwin: isatty.IsCygwinTerminal(probe.fd)}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
