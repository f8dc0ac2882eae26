package domain

import (
	"fmt"
	"strings"
)

// Status is the outcome class of a single rule.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusFailed
)

// String returns the label used in reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// StatusFromName maps a report label back to its Status.
// Returns -1 for unknown labels.
func StatusFromName(name string) Status {
	switch strings.ToUpper(name) {
	case "OK":
		return StatusOK
	case "WARNING":
		return StatusWarning
	case "FAILED":
		return StatusFailed
	default:
		return -1
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	st := StatusFromName(string(b))
	if st < 0 {
		return fmt.Errorf("unknown status %q", b)
	}
	*s = st
	return nil
}

// BarcodeSet is an ordered list of barcodes, one per sample.
// Rules never modify it.
type BarcodeSet []string

// Clone returns an independent copy of the set.
func (bs BarcodeSet) Clone() BarcodeSet {
	out := make(BarcodeSet, len(bs))
	copy(out, bs)
	return out
}

// Width returns the length of the first barcode, or 0 for an empty set.
func (bs BarcodeSet) Width() int {
	if len(bs) == 0 {
		return 0
	}
	return len(bs[0])
}

// Pair names two barcodes of a set by index together with their similarity.
type Pair struct {
	I          int    `json:"i"`
	J          int    `json:"j"`
	First      string `json:"first"`
	Second     string `json:"second"`
	Similarity int    `json:"similarity"`
}

// Verdict is the result of one rule.
type Verdict struct {
	// Rule is the display name of the rule.
	Rule string `json:"rule"`
	// Status is OK, WARNING or FAILED.
	Status Status `json:"status"`
	// Detail is the human-readable explanation for a non-OK status.
	Detail string `json:"detail,omitempty"`
	// Pairs lists offending barcode pairs for the base-match rule.
	Pairs []Pair `json:"pairs,omitempty"`
	// Details holds additional diagnostic information.
	Details map[string]interface{} `json:"details,omitempty"`
}

// OK builds a passing verdict.
func OK(rule string) Verdict {
	return Verdict{Rule: rule, Status: StatusOK}
}

// Failed builds a failing verdict.
func Failed(rule, detail string) Verdict {
	return Verdict{Rule: rule, Status: StatusFailed, Detail: detail}
}

// Warning builds a warning verdict.
func Warning(rule, detail string) Verdict {
	return Verdict{Rule: rule, Status: StatusWarning, Detail: detail}
}

// String renders the verdict as "OK" or "STATUS: detail", followed by the
// offending pairs table when there is one.
func (v Verdict) String() string {
	s := v.Status.String()
	if v.Detail != "" {
		s += ": " + v.Detail
	}
	if len(v.Pairs) > 0 {
		s += "\n" + strings.TrimSuffix(FormatPairs(v.Pairs, nil), "\n")
	}
	return s
}

// FormatPairs renders pairs as tab-indented "BC1 BC2 Similarity" rows under a
// header line. With labels, a Samples column names both barcodes by the
// label at their set index.
func FormatPairs(pairs []Pair, labels []string) string {
	var sb strings.Builder
	sb.WriteString("\t\tBC1\tBC2\tSimilarity")
	if len(labels) > 0 {
		sb.WriteString("\tSamples")
	}
	sb.WriteString("\n")
	for _, p := range pairs {
		fmt.Fprintf(&sb, "\t\t%s\t%s\t%d", p.First, p.Second, p.Similarity)
		if len(labels) > 0 {
			fmt.Fprintf(&sb, "\t%s, %s", label(labels, p.I), label(labels, p.J))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// label returns labels[i], or the 1-based index when labels is too short.
func label(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

// SimilarityMatrix is a symmetric n x n matrix of per-pair similarities.
// The diagonal is left at zero.
type SimilarityMatrix [][]int

// NewSimilarityMatrix allocates an n x n zero matrix.
func NewSimilarityMatrix(n int) SimilarityMatrix {
	m := make(SimilarityMatrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

// Max returns the largest off-diagonal value, or 0 when there are no pairs.
func (m SimilarityMatrix) Max() int {
	max := 0
	for i := range m {
		for j := range m[i] {
			if i != j && m[i][j] > max {
				max = m[i][j]
			}
		}
	}
	return max
}

// Nucleotides is the row order of a FrequencyMatrix.
var Nucleotides = [4]byte{'A', 'C', 'G', 'T'}

// FrequencyMatrix holds, for each nucleotide row (A, C, G, T) and barcode
// position column, the fraction of barcodes carrying that nucleotide there.
type FrequencyMatrix [4][]float64

// Width returns the number of positions.
func (f FrequencyMatrix) Width() int {
	return len(f[0])
}

// Row returns the frequencies of one nucleotide, or nil for symbols outside A/C/G/T.
func (f FrequencyMatrix) Row(nt byte) []float64 {
	for i, n := range Nucleotides {
		if n == nt {
			return f[i]
		}
	}
	return nil
}

// Min returns the smallest cell and whether the matrix has any cell at all.
func (f FrequencyMatrix) Min() (float64, bool) {
	if f.Width() == 0 {
		return 0, false
	}
	min := f[0][0]
	for _, row := range f {
		for _, v := range row {
			if v < min {
				min = v
			}
		}
	}
	return min, true
}

// Report is the ordered collection of verdicts for one barcode set.
type Report struct {
	Barcodes BarcodeSet `json:"barcodes"`
	// Labels optionally names each barcode, e.g. by FASTA/FASTQ record ID.
	Labels       []string         `json:"labels,omitempty"`
	Verdicts     []Verdict        `json:"verdicts"`
	Similarities SimilarityMatrix `json:"similarities,omitempty"`
	Frequencies  *FrequencyMatrix `json:"frequencies,omitempty"`
	// Entropy is the Shannon entropy in bits of each position.
	Entropy []float64 `json:"entropy,omitempty"`
}

// Passed reports whether no rule failed. Warnings do not fail a report.
func (r Report) Passed() bool {
	for _, v := range r.Verdicts {
		if v.Status == StatusFailed {
			return false
		}
	}
	return true
}

// Worst returns the most severe status in the report, StatusOK when empty.
func (r Report) Worst() Status {
	worst := StatusOK
	for _, v := range r.Verdicts {
		if v.Status > worst {
			worst = v.Status
		}
	}
	return worst
}

// Verdict looks up a verdict by rule name.
func (r Report) Verdict(rule string) (Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.Rule == rule {
			return v, true
		}
	}
	return Verdict{}, false
}
