package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File mirrors the optional YAML config file.
type File struct {
	Toilet   string   `yaml:"toilet"`
	FontDirs []string `yaml:"font_dirs"`
	Timeout  string   `yaml:"timeout"`
	LogFile  string   `yaml:"log_file"`
	Trace    *bool    `yaml:"trace"`
}

// DefaultFilePath returns the config file location under the user config dir.
func DefaultFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "tuilet", "config.yaml")
}

// ReadFile decodes the config file at path. A missing file returns an error
// wrapping os.ErrNotExist along with a zero File.
func ReadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	f.Toilet = expandPath(f.Toilet)
	return f, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
