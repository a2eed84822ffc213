// Package logging provides the ambient structured-logging setup shared by
// the parsing core. Loggers are named per subsystem: the Grammar Registry
// and Snippet Extractor constructors each create their own with New and keep
// it on the component — never reached for as a global in the hot path.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a named hclog.Logger. Level is controlled by CRI_LOG_LEVEL
// (defaults to "info"); CRI_LOG_JSON=1 switches to JSON output for machine
// consumption.
func New(name string) hclog.Logger {
	level := hclog.LevelFromString(os.Getenv("CRI_LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     os.Stderr,
		JSONFormat: os.Getenv("CRI_LOG_JSON") == "1",
	})
}
