// Package gcwin extracts a gene's sequence from record files and
// profiles its GC content in fixed windows, against a shuffled control,
// across many records.
package gcwin

import (
	"os"

	"github.com/charmbracelet/log"
)

var (
	// stderr is for logging to Stderr
	stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gcwin"})
)

// SetLogLevel sets the level of the package logger.
func SetLogLevel(level log.Level) {
	stderr.SetLevel(level)
}
