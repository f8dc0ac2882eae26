// Package report renders evaluation reports for terminals and machines.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
	"github.com/baditaflorin/go_barcode_guru/internal/core/rules"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// TextOptions controls the text layout.
type TextOptions struct {
	Color bool
	// Entropy adds a per-position entropy row below the frequency table.
	Entropy bool
	// Similarities prints the pairwise similarity matrix.
	Similarities bool
}

// TextWriter prints one "Rule:\tVERDICT" line per rule, preceded by the
// position weight matrix for the frequency rule.
type TextWriter struct {
	w    io.Writer
	opts TextOptions
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, opts TextOptions) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// Write renders r.
func (tw *TextWriter) Write(r domain.Report) error {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, v := range r.Verdicts {
		if v.Rule == rules.NameFrequency && r.Frequencies != nil {
			sb.WriteString(FormatFrequencies(*r.Frequencies))
			if tw.opts.Entropy && len(r.Entropy) > 0 {
				sb.WriteString(formatEntropy(r.Entropy))
			}
		}
		if v.Rule == rules.NameBaseMatch && tw.opts.Similarities && r.Similarities != nil {
			sb.WriteString(FormatSimilarities(r.Barcodes, r.Labels, r.Similarities))
		}
		sb.WriteString(tw.formatVerdict(v, r.Labels))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func (tw *TextWriter) formatVerdict(v domain.Verdict, labels []string) string {
	status := v.Status.String()
	if tw.opts.Color {
		status = statusColor(v.Status) + colorBold + status + colorReset
	}
	line := v.Rule + ":\t" + status
	if v.Detail != "" {
		line += ": " + v.Detail
	}
	line += "\n"
	if len(v.Pairs) > 0 {
		line += domain.FormatPairs(v.Pairs, labels)
	}
	if dups, ok := v.Details["duplicates"].([]string); ok && len(dups) > 0 {
		line += "\t\t" + strings.Join(dups, ", ") + "\n"
	}
	return line
}

func statusColor(s domain.Status) string {
	switch s {
	case domain.StatusOK:
		return colorGreen
	case domain.StatusWarning:
		return colorYellow
	default:
		return colorRed
	}
}

// FormatFrequencies renders the A/C/G/T by position table with two decimals.
//
//	Position weight matrix: (A/C/G/T)
//	        1     2
//	A    0.25  0.50
func FormatFrequencies(f domain.FrequencyMatrix) string {
	var sb strings.Builder
	sb.WriteString("Position weight matrix: (A/C/G/T)\n")
	sb.WriteString("  ")
	for pos := 0; pos < f.Width(); pos++ {
		sb.WriteString(fmt.Sprintf("%6d", pos+1))
	}
	sb.WriteString("\n")
	for row, nt := range domain.Nucleotides {
		sb.WriteString(string(nt) + " ")
		for _, v := range f[row] {
			sb.WriteString(fmt.Sprintf("%6.2f", v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatEntropy(entropy []float64) string {
	var sb strings.Builder
	sb.WriteString("H ")
	for _, h := range entropy {
		sb.WriteString(fmt.Sprintf("%6.2f", h))
	}
	sb.WriteString("  (bits)\n")
	return sb.String()
}

// FormatSimilarities renders the pairwise similarity matrix, labelled by
// 1-based barcode index and, when labels are given, by sample name.
func FormatSimilarities(barcodes domain.BarcodeSet, labels []string, m domain.SimilarityMatrix) string {
	labelWidth := 0
	for _, name := range labels {
		if len(name) > labelWidth {
			labelWidth = len(name)
		}
	}
	rowHead := func(i int) string {
		if labelWidth == 0 {
			return fmt.Sprintf("%4d  ", i+1)
		}
		name := ""
		if i < len(labels) {
			name = labels[i]
		}
		return fmt.Sprintf("%4d  %-*s  ", i+1, labelWidth, name)
	}

	var sb strings.Builder
	sb.WriteString("Similarity matrix:\n")
	sb.WriteString(fmt.Sprintf("%*s", len(rowHead(0))+width(barcodes), ""))
	for j := range m {
		sb.WriteString(fmt.Sprintf("%4d", j+1))
	}
	sb.WriteString("\n")
	for i, row := range m {
		sb.WriteString(rowHead(i) + fmt.Sprintf("%-*s", width(barcodes), barcodes[i]))
		for j, v := range row {
			if i == j {
				sb.WriteString(fmt.Sprintf("%4s", "-"))
				continue
			}
			sb.WriteString(fmt.Sprintf("%4d", v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatRecoded renders each barcode next to its laser channel recoding.
func FormatRecoded(barcodes, recoded domain.BarcodeSet) string {
	var sb strings.Builder
	for i := range barcodes {
		sb.WriteString(fmt.Sprintf("%-*s  %s\n", width(barcodes), barcodes[i], recoded[i]))
	}
	return sb.String()
}

func width(barcodes domain.BarcodeSet) int {
	w := 0
	for _, b := range barcodes {
		if len(b) > w {
			w = len(b)
		}
	}
	return w
}
