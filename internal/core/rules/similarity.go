package rules

import (
	"fmt"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
)

// Default base-match thresholds. A demultiplexer that tolerates one
// sequencing error needs every pair of barcodes at Hamming distance >= 3.
const (
	DefaultMinHammingDistance = 3
	DefaultReportSimilarity   = 3
)

// Similarity counts the positions at which a and b carry the same symbol.
// The caller guarantees len(a) == len(b); Hamming distance is
// len(a) - Similarity(a, b).
func Similarity(a, b string) int {
	score := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			score++
		}
	}
	return score
}

// SimilarityMatrixOf builds the symmetric pairwise similarity matrix of an
// equal-length set. The diagonal stays zero.
func SimilarityMatrixOf(barcodes domain.BarcodeSet) domain.SimilarityMatrix {
	n := len(barcodes)
	m := domain.NewSimilarityMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m[i][j] = Similarity(barcodes[i], barcodes[j])
			m[j][i] = m[i][j]
		}
	}
	return m
}

// BaseMatchRule fails when two barcodes are within MinHammingDistance-1
// mismatches of each other.
//
// The pass/fail cutoff derives from the barcode length, while offending pairs
// are listed by the fixed ReportSimilarity threshold (similarity above it).
// Both default to the values for 6-nt indexes.
type BaseMatchRule struct {
	MinHammingDistance int
	ReportSimilarity   int
}

// NewBaseMatchRule returns a rule with the default thresholds.
func NewBaseMatchRule() *BaseMatchRule {
	return &BaseMatchRule{
		MinHammingDistance: DefaultMinHammingDistance,
		ReportSimilarity:   DefaultReportSimilarity,
	}
}

func (r *BaseMatchRule) Name() string { return NameBaseMatch }

func (r *BaseMatchRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	v, _ := r.Check(barcodes)
	return v
}

// Check evaluates the rule and also returns the similarity matrix it built.
// The matrix is nil when the set is ragged.
func (r *BaseMatchRule) Check(barcodes domain.BarcodeSet) (domain.Verdict, domain.SimilarityMatrix) {
	if !UniformLength(barcodes) {
		return lengthBlocked(NameBaseMatch), nil
	}
	m := SimilarityMatrixOf(barcodes)
	if len(barcodes) < 2 {
		return domain.OK(NameBaseMatch), m
	}

	width := barcodes.Width()
	maxSim := m.Max()
	if width-maxSim >= r.MinHammingDistance {
		return domain.OK(NameBaseMatch), m
	}

	var pairs []domain.Pair
	for i := range barcodes {
		for j := i + 1; j < len(barcodes); j++ {
			if m[i][j] > r.ReportSimilarity {
				pairs = append(pairs, domain.Pair{
					I:          i,
					J:          j,
					First:      barcodes[i],
					Second:     barcodes[j],
					Similarity: m[i][j],
				})
			}
		}
	}
	v := domain.Failed(NameBaseMatch, fmt.Sprintf(
		"The following indexes were too similar ( Hamming distance <= %d ):", r.MinHammingDistance-1))
	v.Pairs = pairs
	v.Details = map[string]interface{}{
		"max_similarity":   maxSim,
		"min_distance":     width - maxSim,
		"report_threshold": r.ReportSimilarity,
	}
	return v, m
}
