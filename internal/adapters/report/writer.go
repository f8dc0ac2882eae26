package report

import (
	"fmt"
	"io"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// Writer renders a report.
type Writer interface {
	Write(r domain.Report) error
}

// NewWriter returns the writer for an output format name: "text" or "json".
func NewWriter(format string, w io.Writer, opts TextOptions) (Writer, error) {
	switch format {
	case "text", "":
		return NewTextWriter(w, opts), nil
	case "json":
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("invalid output format: %s. Must be 'text' or 'json'", format)
	}
}
