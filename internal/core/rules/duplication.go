package rules

import "github.com/baditaflorin/go_barcode_guru/internal/core/domain"

// DuplicationRule requires every barcode to appear once.
type DuplicationRule struct{}

func (DuplicationRule) Name() string { return NameDuplication }

// Evaluate fails when the set holds repeated values. The repeated values are
// listed under Details["duplicates"] in order of first repetition.
func (DuplicationRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	seen := make(map[string]int, len(barcodes))
	var dups []string
	for _, b := range barcodes {
		seen[b]++
		if seen[b] == 2 {
			dups = append(dups, b)
		}
	}
	if len(seen) == len(barcodes) {
		return domain.OK(NameDuplication)
	}
	v := domain.Failed(NameDuplication, "Index duplication detected.")
	v.Details = map[string]interface{}{"duplicates": dups}
	return v
}
