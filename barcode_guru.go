// barcode_guru.go
// Package barcodeguru checks a set of sequencing index barcodes against the
// rules for pooling them on one lane:
//
//   - all indexes share one length
//   - no index appears twice
//   - the pool has 1 or at least 4 samples
//   - both laser channels ({A,C} and {G,T}) fire at every position
//   - every pair is at Hamming distance >= 3 (configurable)
//   - no nucleotide is rare at any position (warning only)
//
// Rules never return errors. A rule that cannot run, for example because the
// indexes have different lengths, reports FAILED with an explanation.
// This package uses the functional options pattern for thresholds, strict
// alphabet checking and logging.
package barcodeguru

import (
	"context"

	"github.com/baditaflorin/go_barcode_guru/internal/adapters/logger"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/normalizer"
	"github.com/baditaflorin/go_barcode_guru/internal/config"
	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
	"github.com/baditaflorin/go_barcode_guru/internal/core/rules"
	"github.com/baditaflorin/go_barcode_guru/internal/ports"
	"github.com/baditaflorin/l"
)

// Report, Verdict and friends are re-exported so callers need not import
// internal packages.
type (
	Report           = domain.Report
	Verdict          = domain.Verdict
	Status           = domain.Status
	BarcodeSet       = domain.BarcodeSet
	Pair             = domain.Pair
	SimilarityMatrix = domain.SimilarityMatrix
	FrequencyMatrix  = domain.FrequencyMatrix
	RuleConfig       = config.RuleConfig
)

// Verdict statuses.
const (
	StatusOK      = domain.StatusOK
	StatusWarning = domain.StatusWarning
	StatusFailed  = domain.StatusFailed
)

// Default configuration values.
const (
	DefaultMinHammingDistance = rules.DefaultMinHammingDistance
	DefaultReportSimilarity   = rules.DefaultReportSimilarity
	DefaultMinFrequency       = rules.DefaultMinFrequency
)

// Config holds configuration options for the rule battery.
type Config struct {
	MinHammingDistance int
	ReportSimilarity   int
	MinFrequency       float64
	StrictAlphabet     bool
	// Logger for tracing rule evaluation.
	Logger     l.Logger
	Normalizer ports.Normalizer
}

// Option defines a functional option for configuring the rule battery.
type Option func(*Config)

// WithMinHammingDistance sets the smallest allowed distance between two barcodes.
func WithMinHammingDistance(d int) Option {
	return func(cfg *Config) {
		cfg.MinHammingDistance = d
	}
}

// WithReportSimilarity sets the similarity above which a failing pair is listed.
func WithReportSimilarity(s int) Option {
	return func(cfg *Config) {
		cfg.ReportSimilarity = s
	}
}

// WithMinFrequency sets the nucleotide frequency at or below which the
// frequency rule warns.
func WithMinFrequency(f float64) Option {
	return func(cfg *Config) {
		cfg.MinFrequency = f
	}
}

// WithStrictAlphabet adds the alphabet rule, which fails on anything but A, C, G and T.
func WithStrictAlphabet(strict bool) Option {
	return func(cfg *Config) {
		cfg.StrictAlphabet = strict
	}
}

// WithRuleConfig applies settings loaded from a YAML rule file.
func WithRuleConfig(rc RuleConfig) Option {
	return func(cfg *Config) {
		ec := rc.Apply(cfg.engineConfig())
		cfg.MinHammingDistance = ec.MinHammingDistance
		cfg.ReportSimilarity = ec.ReportSimilarity
		cfg.MinFrequency = ec.MinFrequency
		cfg.StrictAlphabet = ec.StrictAlphabet
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithNormalizer sets how raw lines become barcodes in EvaluateStrings.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *Config) {
		cfg.Normalizer = n
	}
}

func (cfg Config) engineConfig() rules.EngineConfig {
	return rules.EngineConfig{
		MinHammingDistance: cfg.MinHammingDistance,
		ReportSimilarity:   cfg.ReportSimilarity,
		MinFrequency:       cfg.MinFrequency,
		StrictAlphabet:     cfg.StrictAlphabet,
	}
}

// LoadRuleConfig reads a YAML rule file for use with WithRuleConfig.
func LoadRuleConfig(path string) (RuleConfig, error) {
	return config.Load(path)
}

// Guru evaluates barcode sets with a fixed configuration.
type Guru struct {
	engine     *rules.Engine
	logger     ports.Logger
	normalizer ports.Normalizer
	// ownedLogger is the logger New created itself; Close releases it.
	ownedLogger l.Logger
}

// New creates a new Guru with the provided functional options.
// If no logger is provided, a default stderr logger is created and the
// caller should Close the Guru when done.
func New(opts ...Option) (*Guru, error) {
	defaults := rules.DefaultConfig()
	cfg := Config{
		MinHammingDistance: defaults.MinHammingDistance,
		ReportSimilarity:   defaults.ReportSimilarity,
		MinFrequency:       defaults.MinFrequency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var owned l.Logger
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
		owned = cfg.Logger
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	log := logger.FromExisting(cfg.Logger)
	engine, err := rules.NewEngine(cfg.engineConfig(), log)
	if err != nil {
		if owned != nil {
			owned.Close()
		}
		return nil, err
	}

	return &Guru{
		engine:      engine,
		logger:      log,
		normalizer:  cfg.Normalizer,
		ownedLogger: owned,
	}, nil
}

// Close flushes and closes the logger New created. A logger passed with
// WithLogger is left to its owner.
func (g *Guru) Close() error {
	if g.ownedLogger == nil {
		return nil
	}
	err := g.ownedLogger.Close()
	g.ownedLogger = nil
	return err
}

// RuleConfig returns the thresholds in effect, with every key set.
func (g *Guru) RuleConfig() RuleConfig {
	return config.FromEngine(g.engine.Config())
}

// newWithPortsLogger builds a Guru around an already adapted logger.
func newWithPortsLogger(ec rules.EngineConfig, log ports.Logger) (*Guru, error) {
	engine, err := rules.NewEngine(ec, log)
	if err != nil {
		return nil, err
	}
	return &Guru{
		engine:     engine,
		logger:     log,
		normalizer: normalizer.NewDefaultNormalizer(),
	}, nil
}

// Evaluate runs the rule battery on barcodes, which must already be
// normalized. The input slice is not modified.
func (g *Guru) Evaluate(ctx context.Context, barcodes BarcodeSet) Report {
	return g.engine.Evaluate(ctx, barcodes)
}

// EvaluateStrings normalizes raw input lines and evaluates them.
func (g *Guru) EvaluateStrings(ctx context.Context, lines []string) Report {
	set := make(BarcodeSet, len(lines))
	for i, line := range lines {
		set[i] = g.normalizer.Normalize(line)
	}
	return g.Evaluate(ctx, set)
}

// RuleNames returns the display names of the configured rules in order.
func (g *Guru) RuleNames() []string {
	var names []string
	for _, r := range g.engine.Rules() {
		names = append(names, r.Name())
	}
	return names
}

// EvaluateWithDefaults evaluates raw lines with the default thresholds and
// no logging.
func EvaluateWithDefaults(lines []string) Report {
	g, err := newWithPortsLogger(rules.DefaultConfig(), logger.Nop{})
	if err != nil {
		// default configuration always validates
		panic(err)
	}
	return g.EvaluateStrings(context.Background(), lines)
}

// UniformLength reports whether all barcodes have the same length.
func UniformLength(barcodes BarcodeSet) bool {
	return rules.UniformLength(barcodes)
}

// Similarity counts the positions at which two equal-length barcodes agree.
func Similarity(a, b string) int {
	return rules.Similarity(a, b)
}

// SimilarityMatrixOf computes the pairwise similarity matrix of an
// equal-length set.
func SimilarityMatrixOf(barcodes BarcodeSet) SimilarityMatrix {
	return rules.SimilarityMatrixOf(barcodes)
}

// FrequencyMatrixOf computes the nucleotide by position frequency matrix of
// an equal-length set.
func FrequencyMatrixOf(barcodes BarcodeSet) FrequencyMatrix {
	return rules.FrequencyMatrixOf(barcodes)
}

// RecodeLasers maps A/C to M and G/T to K on a copy of barcodes.
func RecodeLasers(barcodes BarcodeSet) BarcodeSet {
	return rules.RecodeLasers(barcodes)
}
