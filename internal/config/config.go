package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tuilet/internal/app"
	"github.com/atomicstack/tuilet/internal/toilet"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envToilet   = "TUILET_TOILET"
	envFontDirs = "TUILET_FONT_DIRS"
	envTimeout  = "TUILET_TIMEOUT"
	envTrace    = "TUILET_TRACE"
	envLogFile  = "TUILET_LOG_FILE"
	envConfig   = "TUILET_CONFIG"

	defaultToilet = "toilet"
)

// Flags holds the values bound to a flag set by Register.
type Flags struct {
	fontDirs   []string
	toilet     string
	timeout    time.Duration
	trace      bool
	logFile    string
	configPath string
}

// Register binds tuilet's flags to fs.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringArrayVarP(&f.fontDirs, "fontdir", "D", nil, "add fonts from the given directory (repeatable)")
	fs.StringVarP(&f.toilet, "toilet", "X", defaultToilet, "path to the toilet executable")
	fs.DurationVar(&f.timeout, "timeout", toilet.DefaultTimeout, "maximum time a single toilet invocation may take")
	fs.BoolVar(&f.trace, "trace", false, "enable verbose JSON trace logging")
	fs.StringVar(&f.logFile, "log-file", "", "path to the log file")
	fs.StringVar(&f.configPath, "config", "", "path to the YAML config file")
	return f
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tuilet", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := Register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Resolve(fs, environ, args)
}

// Resolve merges parsed flags, environment and the config file. Flags win
// over environment, which wins over the file.
func (f *Flags) Resolve(fs *pflag.FlagSet, environ []string, args []string) (Config, error) {
	env := parseEnv(environ)

	filePath, explicit := f.configPath, fs.Changed("config")
	if !explicit {
		if v, ok := env[envConfig]; ok && strings.TrimSpace(v) != "" {
			filePath, explicit = v, true
		} else {
			filePath = DefaultFilePath()
		}
	}
	file, err := ReadFile(filePath)
	if err != nil {
		if !(errors.Is(err, os.ErrNotExist) && !explicit) {
			return Config{}, fmt.Errorf("read config %s: %w", filePath, err)
		}
	}

	exe := expandPath(pick(fs.Changed("toilet"), f.toilet, env, envToilet, file.Toilet, defaultToilet))

	timeout := f.timeout
	if !fs.Changed("timeout") {
		raw := pick(false, "", env, envTimeout, file.Timeout, "")
		if raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				return Config{}, fmt.Errorf("invalid timeout %q: %w", raw, err)
			}
			timeout = parsed
		}
	}

	trace := f.trace
	if !fs.Changed("trace") {
		trace = envOrBool(env, envTrace, file.Trace != nil && *file.Trace)
	}

	logFile := pick(fs.Changed("log-file"), f.logFile, env, envLogFile, file.LogFile, "")

	dirs := make([]string, 0, len(file.FontDirs)+len(f.fontDirs))
	for _, d := range file.FontDirs {
		dirs = append(dirs, expandPath(d))
	}
	if v, ok := env[envFontDirs]; ok {
		for _, d := range filepath.SplitList(v) {
			if strings.TrimSpace(d) != "" {
				dirs = append(dirs, expandPath(d))
			}
		}
	}
	dirs = append(dirs, f.fontDirs...)

	cfg := Config{
		App: app.Config{
			Toilet:   exe,
			FontDirs: dirs,
			Timeout:  timeout,
		},
		Logging: Logging{
			FilePath: expandPath(logFile),
			Trace:    trace,
		},
		File: filePath,
		Flags: map[string]string{
			"toilet":   exe,
			"fontdirs": strings.Join(dirs, string(filepath.ListSeparator)),
			"timeout":  timeout.String(),
			"trace":    strconv.FormatBool(trace),
			"logFile":  logFile,
			"config":   filePath,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// pick returns the flag value when set, then the environment, then the
// file value, then fallback.
func pick(flagSet bool, flagValue string, env map[string]string, key, fileValue, fallback string) string {
	if flagSet {
		return flagValue
	}
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if strings.TrimSpace(fileValue) != "" {
		return fileValue
	}
	return fallback
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Toilet) == "" {
		return errors.New("toilet executable path must not be empty")
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	return nil
}
