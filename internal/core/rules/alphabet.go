package rules

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// Offence locates one invalid symbol. Position is 1-based; an empty barcode
// is reported with Position 0.
type Offence struct {
	Index    int    `json:"index"`
	Barcode  string `json:"barcode"`
	Position int    `json:"position"`
	Symbol   string `json:"symbol"`
}

func isNucleotide(c byte) bool {
	switch c {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}

// AlphabetRule is the opt-in strict check that every barcode is a non-empty
// string over A, C, G and T. The other rules do not depend on it.
type AlphabetRule struct{}

func (AlphabetRule) Name() string { return NameAlphabet }

func (AlphabetRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	var offences []Offence
	for i, b := range barcodes {
		if b == "" {
			offences = append(offences, Offence{Index: i + 1, Barcode: b})
			continue
		}
		for j := 0; j < len(b); j++ {
			if !isNucleotide(b[j]) {
				offences = append(offences, Offence{Index: i + 1, Barcode: b, Position: j + 1, Symbol: string(b[j])})
			}
		}
	}
	if len(offences) == 0 {
		return domain.OK(NameAlphabet)
	}

	parts := make([]string, 0, len(offences))
	for _, o := range offences {
		if o.Position == 0 {
			parts = append(parts, fmt.Sprintf("#%d is empty", o.Index))
			continue
		}
		parts = append(parts, fmt.Sprintf("#%d %s has %q at %d", o.Index, o.Barcode, o.Symbol, o.Position))
	}
	v := domain.Failed(NameAlphabet, "only A, C, G and T are allowed: "+strings.Join(parts, "; "))
	v.Details = map[string]interface{}{"offences": offences}
	return v
}
