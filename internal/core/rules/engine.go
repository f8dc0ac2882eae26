package rules

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_barcode_guru/internal/core/domain"
	"github.com/baditaflorin/go_barcode_guru/internal/ports"
)

// EngineConfig holds the thresholds of the rule battery.
type EngineConfig struct {
	// MinHammingDistance is the smallest Hamming distance allowed between
	// any two barcodes.
	MinHammingDistance int
	// ReportSimilarity lists pairs whose similarity exceeds it when the
	// base-match rule fails.
	ReportSimilarity int
	// MinFrequency warns when any nucleotide frequency is at or below it.
	MinFrequency float64
	// StrictAlphabet appends the alphabet rule to the battery.
	StrictAlphabet bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		MinHammingDistance: DefaultMinHammingDistance,
		ReportSimilarity:   DefaultReportSimilarity,
		MinFrequency:       DefaultMinFrequency,
	}
}

// Validate checks if the configuration is valid.
func (c EngineConfig) Validate() error {
	if c.MinHammingDistance < 1 {
		return errors.New("minHammingDistance must be at least 1")
	}
	if c.ReportSimilarity < 0 {
		return errors.New("reportSimilarity must not be negative")
	}
	if c.MinFrequency < 0 || c.MinFrequency > 1 {
		return errors.New("minFrequency must be between 0 and 1")
	}
	return nil
}

// Engine runs the rule battery in a fixed order.
type Engine struct {
	config EngineConfig
	logger ports.Logger
	rules  []ports.Rule
}

// NewEngine creates a new rule engine.
func NewEngine(config EngineConfig, logger ports.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	battery := []ports.Rule{
		LengthRule{},
		DuplicationRule{},
		PoolSizeRule{},
		LasersRule{},
		&BaseMatchRule{
			MinHammingDistance: config.MinHammingDistance,
			ReportSimilarity:   config.ReportSimilarity,
		},
		&FrequencyRule{MinFrequency: config.MinFrequency},
	}
	if config.StrictAlphabet {
		battery = append(battery, AlphabetRule{})
	}

	return &Engine{
		config: config,
		logger: logger,
		rules:  battery,
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Rules returns the battery in evaluation order.
func (e *Engine) Rules() []ports.Rule {
	out := make([]ports.Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Evaluate runs every rule against barcodes. The report holds one verdict
// per rule; once ctx is done the remaining rules are reported as failed.
func (e *Engine) Evaluate(ctx context.Context, barcodes domain.BarcodeSet) domain.Report {
	set := barcodes.Clone()
	e.logger.Debug("Starting barcode evaluation",
		"barcodes", len(set),
		"width", set.Width(),
	)

	report := domain.Report{
		Barcodes: set,
		Verdicts: make([]domain.Verdict, 0, len(e.rules)),
	}

	for _, r := range e.rules {
		select {
		case <-ctx.Done():
			e.logger.Error("Evaluation cancelled", "rule", r.Name(), "error", ctx.Err())
			report.Verdicts = append(report.Verdicts, domain.Failed(r.Name(), "evaluation cancelled"))
			continue
		default:
		}

		var v domain.Verdict
		switch rule := r.(type) {
		case *BaseMatchRule:
			v, report.Similarities = rule.Check(set)
		case *FrequencyRule:
			v, report.Frequencies, report.Entropy = rule.Check(set)
		default:
			v = r.Evaluate(set)
		}

		e.logger.Debug("Rule evaluated",
			"rule", v.Rule,
			"status", v.Status.String(),
			"detail", v.Detail,
		)
		report.Verdicts = append(report.Verdicts, v)
	}

	e.logger.Debug("Completed barcode evaluation", "passed", report.Passed())
	return report
}
