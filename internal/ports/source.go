package ports

import (
	"context"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// BarcodeSource yields a barcode set from some input.
type BarcodeSource interface {
	// ReadBarcodes reads all barcodes, normalized, in input order.
	ReadBarcodes(ctx context.Context) (domain.BarcodeSet, error)
	Close() error
}

// NamedSource is a BarcodeSource whose records carry sample names.
type NamedSource interface {
	BarcodeSource
	// Names returns one name per barcode read so far, in input order.
	Names() []string
}
