package app

import "time"

// Config describes user-provided application options.
type Config struct {
	Toilet   string
	FontDirs []string
	Timeout  time.Duration
	// Version is shown in the title row. It is set by the binary, not by flags.
	Version string `json:"-"`
}
