package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_barcode_guru/internal/ports"
)

// DefaultNormalizer upper-cases a line and trims surrounding whitespace,
// line endings included. Interior characters, including spaces, are kept so
// that malformed input still reaches the rules.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the line to upper case and trims surrounding whitespace.
func (n *DefaultNormalizer) Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// CompactNormalizer drops every whitespace character and quote, for lists
// pasted from spreadsheets or code.
type CompactNormalizer struct{}

// NewCompactNormalizer creates a new compact normalizer.
func NewCompactNormalizer() ports.Normalizer {
	return &CompactNormalizer{}
}

// Normalize removes spaces and quotes and upper-cases the remaining runes.
func (n *CompactNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
