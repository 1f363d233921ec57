package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the default config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Toilet != "toilet" {
		t.Fatalf("expected default toilet, got %q", cfg.App.Toilet)
	}
	if len(cfg.App.FontDirs) != 0 {
		t.Fatalf("expected no extra font dirs, got %v", cfg.App.FontDirs)
	}
	if cfg.App.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.App.Timeout)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsParsesRepeatableFontDirs(t *testing.T) {
	isolate(t)
	cfg, err := LoadArgs([]string{"-D", "dir1", "--fontdir", "dir2", "-X", "exe"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if strings.Join(cfg.App.FontDirs, ",") != "dir1,dir2" {
		t.Fatalf("expected [dir1 dir2], got %v", cfg.App.FontDirs)
	}
	if cfg.App.Toilet != "exe" {
		t.Fatalf("expected toilet exe, got %q", cfg.App.Toilet)
	}
	if cfg.Flags["toilet"] != "exe" {
		t.Fatalf("expected flags map to carry toilet, got %v", cfg.Flags)
	}
}

func TestLoadArgsEnvironmentOverridesDefault(t *testing.T) {
	isolate(t)
	env := []string{
		envToilet + "=/opt/bin/toilet",
		envTimeout + "=250ms",
		envTrace + "=true",
		envLogFile + "=/tmp/tuilet-test.log",
		envFontDirs + "=/a" + string(filepath.ListSeparator) + "/b",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Toilet != "/opt/bin/toilet" {
		t.Fatalf("expected env toilet, got %q", cfg.App.Toilet)
	}
	if cfg.App.Timeout != 250*time.Millisecond {
		t.Fatalf("expected env timeout, got %s", cfg.App.Timeout)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/tuilet-test.log" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if strings.Join(cfg.App.FontDirs, ",") != "/a,/b" {
		t.Fatalf("unexpected font dirs %v", cfg.App.FontDirs)
	}
}

func TestLoadArgsFlagOverridesEnvironment(t *testing.T) {
	isolate(t)
	cfg, err := LoadArgs([]string{"--toilet", "flag-toilet", "--timeout", "2s"}, []string{envToilet + "=env-toilet", envTimeout + "=9s"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Toilet != "flag-toilet" {
		t.Fatalf("expected flag to win, got %q", cfg.App.Toilet)
	}
	if cfg.App.Timeout != 2*time.Second {
		t.Fatalf("expected flag timeout, got %s", cfg.App.Timeout)
	}
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `toilet: /usr/local/bin/toilet
font_dirs:
  - /srv/fonts
timeout: 3s
trace: true
`)
	cfg, err := LoadArgs([]string{"--config", path, "-D", "/cli/fonts"}, []string{envTimeout + "=1s"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Toilet != "/usr/local/bin/toilet" {
		t.Fatalf("expected file toilet, got %q", cfg.App.Toilet)
	}
	if cfg.App.Timeout != time.Second {
		t.Fatalf("expected env timeout to beat the file, got %s", cfg.App.Timeout)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from file")
	}
	if strings.Join(cfg.App.FontDirs, ",") != "/srv/fonts,/cli/fonts" {
		t.Fatalf("expected file dirs before flag dirs, got %v", cfg.App.FontDirs)
	}
	if cfg.File != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.File)
	}
}

func TestLoadArgsConfigFromEnvironment(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "toilet: from-file\n")
	cfg, err := LoadArgs(nil, []string{envConfig + "=" + path})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Toilet != "from-file" {
		t.Fatalf("expected toilet from env-selected file, got %q", cfg.App.Toilet)
	}
}

func TestLoadArgsMissingExplicitConfigFails(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadArgs([]string{"--config", missing}, nil); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadArgsMalformedConfigFails(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "font_dirs: [unterminated\n")
	if _, err := LoadArgs([]string{"--config", path}, nil); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestLoadArgsRejectsBadTimeout(t *testing.T) {
	isolate(t)
	if _, err := LoadArgs(nil, []string{envTimeout + "=soon"}); err == nil {
		t.Fatalf("expected invalid timeout error")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	isolate(t)
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	isolate(t)
	cfg, err := LoadArgs([]string{"--timeout", "0s"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected zero timeout to fail validation")
	}
	cfg.App.Timeout = time.Second
	cfg.App.Toilet = " "
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected blank toilet to fail validation")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/fonts"); got != filepath.Join(home, "fonts") {
		t.Fatalf("expected home expansion, got %q", got)
	}
	if got := expandPath("/abs"); got != "/abs" {
		t.Fatalf("expected unchanged path, got %q", got)
	}
}

func TestLoadArgsExpandsEnvironmentToilet(t *testing.T) {
	isolate(t)
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := LoadArgs(nil, []string{envToilet + "=~/bin/toilet"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if want := filepath.Join(home, "bin", "toilet"); cfg.App.Toilet != want {
		t.Fatalf("expected %q, got %q", want, cfg.App.Toilet)
	}
}
