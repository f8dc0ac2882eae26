package ports

// Normalizer defines the interface for turning one raw input line into a barcode.
type Normalizer interface {
	Normalize(text string) string
}
