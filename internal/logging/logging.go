// Package logging configures the process-wide logger. All diagnostics go
// to stderr so that stdout stays reserved for response output.
package logging

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when neither the flag nor the config names one.
const DefaultLevel = "info"

// Setup parses the level string and configures the global logger.
func Setup(levelStr string) error {
	if levelStr == "" {
		levelStr = DefaultLevel
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid log level %q (use panic, fatal, error, warn, info, debug or trace)", levelStr)
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}
