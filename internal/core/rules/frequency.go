package rules

import (
	"fmt"
	"math"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// DefaultMinFrequency is the per-cell frequency at or below which the
// frequency rule warns.
const DefaultMinFrequency = 0.1

// countAtPosition counts barcodes carrying nt at pos.
func countAtPosition(barcodes domain.BarcodeSet, nt byte, pos int) int {
	n := 0
	for _, b := range barcodes {
		if b[pos] == nt {
			n++
		}
	}
	return n
}

// FrequencyMatrixOf computes the A/C/G/T by position frequency matrix of an
// equal-length set. Symbols other than A, C, G and T are never counted.
func FrequencyMatrixOf(barcodes domain.BarcodeSet) domain.FrequencyMatrix {
	var f domain.FrequencyMatrix
	width := barcodes.Width()
	for row, nt := range domain.Nucleotides {
		f[row] = make([]float64, width)
		for pos := 0; pos < width; pos++ {
			f[row][pos] = float64(countAtPosition(barcodes, nt, pos)) / float64(len(barcodes))
		}
	}
	return f
}

// PositionEntropy returns the Shannon entropy in bits of every column of f.
// A perfectly balanced column scores 2.
func PositionEntropy(f domain.FrequencyMatrix) []float64 {
	out := make([]float64, f.Width())
	for pos := range out {
		var h float64
		for row := range f {
			if p := f[row][pos]; p > 0 {
				h -= p * math.Log2(p)
			}
		}
		out[pos] = h
	}
	return out
}

// FrequencyRule warns when some nucleotide is rare or absent at some
// position across the pool.
type FrequencyRule struct {
	MinFrequency float64
}

// NewFrequencyRule returns a rule with the default threshold.
func NewFrequencyRule() *FrequencyRule {
	return &FrequencyRule{MinFrequency: DefaultMinFrequency}
}

func (r *FrequencyRule) Name() string { return NameFrequency }

func (r *FrequencyRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	v, _, _ := r.Check(barcodes)
	return v
}

// Check evaluates the rule and also returns the frequency matrix and the
// per-position entropy. Both are nil when the set is ragged.
func (r *FrequencyRule) Check(barcodes domain.BarcodeSet) (domain.Verdict, *domain.FrequencyMatrix, []float64) {
	if !UniformLength(barcodes) {
		return lengthBlocked(NameFrequency), nil, nil
	}
	f := FrequencyMatrixOf(barcodes)
	entropy := PositionEntropy(f)

	min, ok := f.Min()
	if !ok || min > r.MinFrequency {
		return domain.OK(NameFrequency), &f, entropy
	}

	row, pos := argMin(f)
	v := domain.Warning(NameFrequency, fmt.Sprintf(
		"entropy is low. At least one position has a nt freq <= %g%%", math.Round(r.MinFrequency*1000)/10))
	v.Details = map[string]interface{}{
		"min_frequency": min,
		"nucleotide":    string(domain.Nucleotides[row]),
		"position":      pos + 1,
	}
	return v, &f, entropy
}

// argMin returns the first cell holding the minimum, scanning position-major.
func argMin(f domain.FrequencyMatrix) (row, pos int) {
	min := math.Inf(1)
	for p := 0; p < f.Width(); p++ {
		for r := range f {
			if f[r][p] < min {
				min, row, pos = f[r][p], r, p
			}
		}
	}
	return row, pos
}
