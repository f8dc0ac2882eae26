package cmd

import (
	"fmt"
	"strings"

	barcodeguru "github.com/baditaflorin/go_barcode_guru"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/report"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	output  string
	color   string
	entropy bool
	matrix  bool
	failOn  string
}

func addCheckFlags(cmd *cobra.Command, co *checkOptions) {
	f := cmd.Flags()
	f.StringVarP(&co.output, "output", "o", "text", "output format: text or json")
	f.StringVar(&co.color, "color", "auto", "colorize verdicts: auto, always or never")
	f.BoolVar(&co.entropy, "entropy", false, "print per-position Shannon entropy under the frequency table")
	f.BoolVar(&co.matrix, "matrix", false, "print the pairwise similarity matrix")
	f.StringVar(&co.failOn, "fail-on", "failed", "exit with status 1 when a verdict is at least this severe: failed, warning or never")
}

func runCheck(cmd *cobra.Command, in *inputFlags, rf *ruleFlags, co *checkOptions) error {
	level, enabled, err := parseFailOn(co.failOn)
	if err != nil {
		return err
	}
	rc, err := rf.ruleConfig(cmd)
	if err != nil {
		return err
	}
	log, err := in.logger()
	if err != nil {
		return err
	}
	defer log.Close()

	guru, err := barcodeguru.New(
		barcodeguru.WithLogger(log),
		barcodeguru.WithRuleConfig(rc),
		barcodeguru.WithNormalizer(in.normalizer()),
	)
	if err != nil {
		return fmt.Errorf("invalid rule configuration: %w", err)
	}

	barcodes, labels, err := in.readBarcodes(cmd, log)
	if err != nil {
		return err
	}
	log.Info("Checking barcodes", "input", in.input, "barcodes", len(barcodes))

	r := guru.Evaluate(cmd.Context(), barcodes)
	r.Labels = labels

	w, err := report.NewWriter(co.output, cmd.OutOrStdout(), report.TextOptions{
		Color:        resolveColor(co.color),
		Entropy:      co.entropy,
		Similarities: co.matrix,
	})
	if err != nil {
		return err
	}
	if err := w.Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Info("Barcode check finished", "passed", r.Passed(), "worst", r.Worst().String())
	if enabled && r.Worst() >= level {
		return errRulesFailed
	}
	return nil
}

// parseFailOn maps the --fail-on value to a status threshold. "never"
// disables the failing exit status.
func parseFailOn(name string) (barcodeguru.Status, bool, error) {
	if strings.EqualFold(name, "never") {
		return barcodeguru.StatusOK, false, nil
	}
	var level barcodeguru.Status
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, false, fmt.Errorf("invalid --fail-on: %w", err)
	}
	if level == barcodeguru.StatusOK {
		return level, false, fmt.Errorf("invalid --fail-on: %q would fail every run", name)
	}
	return level, true, nil
}

// resolveColor determines whether to use color output based on the flag and TTY status.
func resolveColor(colorFlag string) bool {
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		return isStdoutTTY()
	}
}
