package rules

import (
	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// Two-channel base calling groups nucleotides by laser: IUPAC M = A or C,
// IUPAC K = G or T.
const (
	LaserAC byte = 'M'
	LaserGT byte = 'K'
)

// laserGroup maps a nucleotide to its laser channel symbol. Other symbols
// are kept as they are.
func laserGroup(c byte) byte {
	switch c {
	case 'A', 'C':
		return LaserAC
	case 'G', 'T':
		return LaserGT
	default:
		return c
	}
}

// RecodeLasers returns a new set in which every A/C is replaced by M and
// every G/T by K. The input is not modified.
func RecodeLasers(barcodes domain.BarcodeSet) domain.BarcodeSet {
	out := make(domain.BarcodeSet, len(barcodes))
	for i := range barcodes {
		buf := make([]byte, len(barcodes[i]))
		for j := 0; j < len(barcodes[i]); j++ {
			buf[j] = laserGroup(barcodes[i][j])
		}
		out[i] = string(buf)
	}
	return out
}

// LasersRule requires that both laser channels fire at every position of the
// pool, i.e. that no column of the recoded set holds a single symbol.
type LasersRule struct{}

func (LasersRule) Name() string { return NameLasers }

// Evaluate stops at the first unbalanced column and reports it under
// Details["position"] (1-based) and Details["channel"].
func (LasersRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	if !UniformLength(barcodes) {
		return lengthBlocked(NameLasers)
	}
	recoded := RecodeLasers(barcodes)
	for pos := 0; pos < recoded.Width(); pos++ {
		symbols := make(map[byte]struct{}, 2)
		for i := range recoded {
			symbols[recoded[i][pos]] = struct{}{}
		}
		if len(symbols) != 1 {
			continue
		}
		v := domain.Failed(NameLasers, "Each base position must have both {A or C} and {G or T}.")
		v.Details = map[string]interface{}{
			"position": pos + 1,
			"channel":  string(recoded[0][pos]),
		}
		return v
	}
	return domain.OK(NameLasers)
}
