package ports

import "github.com/baditaflorin/go_barcode_guru/internal/core/domain"

// Rule evaluates one pooling-compatibility check over a barcode set.
type Rule interface {
	// Name is the display name used in reports.
	Name() string
	Evaluate(barcodes domain.BarcodeSet) domain.Verdict
}
