package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	barcodeguru "github.com/baditaflorin/go_barcode_guru"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/logger"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/normalizer"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/source"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/stream/lineprocessor"
	"github.com/baditaflorin/go_barcode_guru/internal/config"
	"github.com/baditaflorin/go_barcode_guru/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

// inputFlags are shared by every subcommand.
type inputFlags struct {
	input     string
	format    string
	logFile   string
	verbose   bool
	skipBlank bool
	compact   bool
}

// ruleFlags select thresholds. Unchanged flags leave the config file or
// default value in place.
type ruleFlags struct {
	configPath       string
	strict           bool
	minDistance      int
	reportSimilarity int
	minFrequency     float64
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errRulesFailed) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	in := &inputFlags{}
	rf := &ruleFlags{}
	co := &checkOptions{}

	root := &cobra.Command{
		Use:   "barcodeguru",
		Short: "Check index barcodes for pooling compatibility",
		Long: "Checks a set of sequencing index barcodes for uniform length, duplicates, pool size,\n" +
			"dual-laser balance, pairwise Hamming distance and per-position nucleotide balance.\n" +
			"Barcodes are read one per line, or from FASTA/FASTQ records.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, in, rf, co)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&in.input, "input", "i", source.Stdin, "barcode file ('-' for stdin; .gz is read transparently)")
	pf.StringVarP(&in.format, "format", "f", string(source.FormatAuto), "input format: auto, lines or fastx")
	pf.StringVar(&in.logFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVarP(&in.verbose, "verbose", "v", false, "log rule evaluation to stderr")
	pf.BoolVar(&in.skipBlank, "skip-blank", false, "ignore empty lines instead of treating them as barcodes")
	pf.BoolVar(&in.compact, "compact", false, "drop spaces and quotes inside each line")

	pf.StringVarP(&rf.configPath, "config", "c", "", "YAML rule configuration file")
	pf.BoolVar(&rf.strict, "strict", false, "also fail on symbols other than A, C, G, T")
	pf.IntVar(&rf.minDistance, "min-distance", barcodeguru.DefaultMinHammingDistance, "minimum Hamming distance between any two barcodes")
	pf.IntVar(&rf.reportSimilarity, "report-similarity", barcodeguru.DefaultReportSimilarity, "list failing pairs with a similarity above this")
	pf.Float64Var(&rf.minFrequency, "min-frequency", barcodeguru.DefaultMinFrequency, "warn when a nucleotide frequency is at or below this")

	addCheckFlags(root, co)

	root.AddCommand(newRecodeCmd(in))
	root.AddCommand(newMatrixCmd(in))
	root.AddCommand(newConfigCmd(in, rf))
	return root
}

// ruleConfig merges the config file with explicitly set flags.
func (rf *ruleFlags) ruleConfig(cmd *cobra.Command) (config.RuleConfig, error) {
	var rc config.RuleConfig
	if rf.configPath != "" {
		var err error
		rc, err = config.Load(rf.configPath)
		if err != nil {
			return rc, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		rc.StrictAlphabet = &rf.strict
	}
	if flags.Changed("min-distance") {
		rc.MinHammingDistance = &rf.minDistance
	}
	if flags.Changed("report-similarity") {
		rc.ReportSimilarity = &rf.reportSimilarity
	}
	if flags.Changed("min-frequency") {
		rc.MinFrequency = &rf.minFrequency
	}
	return rc, nil
}

func (in *inputFlags) normalizer() ports.Normalizer {
	if in.compact {
		return normalizer.NewCompactNormalizer()
	}
	return normalizer.NewDefaultNormalizer()
}

func (in *inputFlags) logger() (l.Logger, error) {
	return logger.CreateFileLogger(in.logFile, in.verbose)
}

// readBarcodes opens the configured input and reads the whole barcode set.
// Labels holds the FASTA/FASTQ record names and is nil for line input.
func (in *inputFlags) readBarcodes(cmd *cobra.Command, log l.Logger) (barcodes barcodeguru.BarcodeSet, labels []string, err error) {
	format, err := source.ParseFormat(in.format)
	if err != nil {
		return nil, nil, err
	}
	if (in.input == source.Stdin || in.input == "") && isStdinTTY() {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
	}

	src, err := source.Open(in.input, format, logger.FromExisting(log), in.normalizer(),
		lineprocessor.ProcessingConfig{SkipBlank: in.skipBlank})
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	barcodes, err = src.ReadBarcodes(ctx)
	if err != nil {
		return nil, nil, err
	}
	if named, ok := src.(ports.NamedSource); ok {
		labels = named.Names()
	}
	return barcodes, labels, nil
}

const prompt = "Enter barcode sequences (e.g. AACCTG; do not use quotes), one per line.\n" +
	"Press CTRL-D when finished (Windows: CTRL-Z, Enter).\n\n"

// isStdinTTY returns true if stdin is connected to a terminal.
func isStdinTTY() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
