// Package rules implements the pooling-compatibility checks run against a
// set of sequencing index barcodes.
//
// Every rule is a pure function of the barcode set. Rules that depend on
// position never assume a previous length check passed: they re-run
// UniformLength and report a length mismatch instead of running.
package rules

import "github.com/baditaflorin/go_barcode_guru/internal/core/domain"

// Display names, in evaluation order.
const (
	NameLength      = "Index lengths"
	NameDuplication = "Duplication"
	NamePoolSize    = "Pool size"
	NameLasers      = "Dual Lasers"
	NameBaseMatch   = "Base Matches"
	NameFrequency   = "Nucleotide frequencies"
	NameAlphabet    = "Alphabet"
)

const (
	msgLengthMismatch = "Index length mismatch(es) detected."
	msgBlocked        = "Cannot test until index length mismatch(es) fixed."
)

// UniformLength reports whether every barcode has the same length.
// Empty and single-element sets are uniform.
func UniformLength(barcodes domain.BarcodeSet) bool {
	for i := 1; i < len(barcodes); i++ {
		if len(barcodes[i]) != len(barcodes[0]) {
			return false
		}
	}
	return true
}

// lengthBlocked is the verdict of a position-dependent rule on a ragged set.
func lengthBlocked(rule string) domain.Verdict {
	return domain.Failed(rule, msgBlocked)
}

// LengthRule reports whether all barcodes share one length.
type LengthRule struct{}

func (LengthRule) Name() string { return NameLength }

func (LengthRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	if UniformLength(barcodes) {
		return domain.OK(NameLength)
	}
	v := domain.Failed(NameLength, msgLengthMismatch)
	lengths := make(map[int]int)
	for _, b := range barcodes {
		lengths[len(b)]++
	}
	v.Details = map[string]interface{}{"lengths": lengths}
	return v
}
