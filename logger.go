// logger.go
// Package barcodeguru provides shared utilities for the go_barcode_guru package.
package barcodeguru

import (
	"os"

	"github.com/baditaflorin/go_barcode_guru/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates and returns a default logger instance.
// It writes to stderr so that reports on stdout stay clean.
func createDefaultLogger() (l.Logger, error) {
	return logger.CreateLogger(os.Stderr, false)
}
