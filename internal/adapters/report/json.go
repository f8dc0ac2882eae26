package report

import (
	"encoding/json"
	"io"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// Response is the machine-readable form of a report.
type Response struct {
	Passed bool `json:"passed"`
	domain.Report
}

// JSONWriter writes one indented JSON document per report.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// Write renders r.
func (jw *JSONWriter) Write(r domain.Report) error {
	return jw.enc.Encode(Response{Passed: r.Passed(), Report: r})
}
