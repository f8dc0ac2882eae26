// Package config loads rule thresholds from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_barcode_guru/internal/core/rules"
	"gopkg.in/yaml.v3"
)

// RuleConfig is the YAML form of the rule thresholds. Unset keys keep the
// engine defaults.
//
//	min_hamming_distance: 3
//	report_similarity: 3
//	min_frequency: 0.1
//	strict_alphabet: false
type RuleConfig struct {
	MinHammingDistance *int     `yaml:"min_hamming_distance,omitempty"`
	ReportSimilarity   *int     `yaml:"report_similarity,omitempty"`
	MinFrequency       *float64 `yaml:"min_frequency,omitempty"`
	StrictAlphabet     *bool    `yaml:"strict_alphabet,omitempty"`
}

// Load reads and parses a rule file.
func Load(path string) (RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return RuleConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML rule settings. Unknown keys are rejected.
func Parse(data []byte) (RuleConfig, error) {
	var cfg RuleConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RuleConfig{}, err
	}
	if err := cfg.Apply(rules.DefaultConfig()).Validate(); err != nil {
		return RuleConfig{}, err
	}
	return cfg, nil
}

// Apply overlays the set keys onto base.
func (c RuleConfig) Apply(base rules.EngineConfig) rules.EngineConfig {
	if c.MinHammingDistance != nil {
		base.MinHammingDistance = *c.MinHammingDistance
	}
	if c.ReportSimilarity != nil {
		base.ReportSimilarity = *c.ReportSimilarity
	}
	if c.MinFrequency != nil {
		base.MinFrequency = *c.MinFrequency
	}
	if c.StrictAlphabet != nil {
		base.StrictAlphabet = *c.StrictAlphabet
	}
	return base
}

// FromEngine returns a RuleConfig with every key set from cfg.
func FromEngine(cfg rules.EngineConfig) RuleConfig {
	return RuleConfig{
		MinHammingDistance: &cfg.MinHammingDistance,
		ReportSimilarity:   &cfg.ReportSimilarity,
		MinFrequency:       &cfg.MinFrequency,
		StrictAlphabet:     &cfg.StrictAlphabet,
	}
}

// YAML renders the set keys. The output is accepted by Parse.
func (c RuleConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Marshal renders the effective settings of cfg as YAML.
func Marshal(cfg rules.EngineConfig) ([]byte, error) {
	return FromEngine(cfg).YAML()
}
