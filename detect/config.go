// SPDX-License-Identifier: MIT

// Package detect: configuration, options and sentinel errors.

package detect

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/simil"
)

// Sentinel errors.
var (
	// ErrNilModel is returned when Detect receives a nil model.
	ErrNilModel = errors.New("detect: nil model")
	// ErrNilPartial is returned when DetectPartial receives a nil partial
	// decomposition.
	ErrNilPartial = errors.New("detect: nil partial decomposition")
	// ErrBadLength is returned when an eps sequence of length < 1 is asked for.
	ErrBadLength = errors.New("detect: eps sequence length must be ≥ 1")
	// ErrBadMid is returned when the eps sequence midpoint is not finite and > 0.
	ErrBadMid = errors.New("detect: eps sequence midpoint must be > 0")
	// ErrBadIterations is returned for a config with NIterations < 1.
	ErrBadIterations = errors.New("detect: n_iterations must be ≥ 1")
)

// Sweep bounds shared by the three detectors.
const (
	// DefaultNIterations is the eps sequence length for the density and
	// tree detectors.
	DefaultNIterations = 51

	// Flow sweep: inflate factors inflateBase + i·inflateStep, i < maxInflateSteps.
	inflateBase     = 1.10
	inflateStep     = 0.05
	maxInflateSteps = 20

	// epsPercentile is the edge-weight quantile seeding the eps sequence.
	epsPercentile = 0.1

	// A sweep stops once nBlocks exceeds min(round(blocksFrac·nConss), blocksCap).
	blocksFrac = 0.3
	blocksCap  = 100
)

// Config parameterizes one detector. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	// NIterations is the eps sequence length (density and tree detectors;
	// the flow detector's inflate grid is fixed).
	NIterations int `yaml:"n_iterations"`

	// Measures names the enabled similarity measures ("johnson",
	// "intersection", "jaccard", "cosine", "simpson"); empty enables all.
	Measures []string `yaml:"measures"`

	// Postprocess moves constraints whose variables span several clusters
	// into the master bucket before assembling each candidate.
	Postprocess bool `yaml:"postprocess"`
}

// DefaultConfig returns the stock parameterization: full eps sequence, all
// measures, post-processing on.
func DefaultConfig() Config {
	return Config{NIterations: DefaultNIterations, Postprocess: true}
}

// LoadConfig reads a YAML Config from path; fields absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("detect: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("detect: parse config: %w", err)
	}
	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.NIterations < 1 {
		return ErrBadIterations
	}
	_, err := c.measures()

	return err
}

// measures resolves the enabled measure set; empty means all five.
func (c Config) measures() ([]simil.DistanceMeasure, error) {
	if len(c.Measures) == 0 {
		return simil.Measures(), nil
	}
	out := make([]simil.DistanceMeasure, 0, len(c.Measures))
	for _, name := range c.Measures {
		m, err := simil.ParseMeasure(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// Option adjusts one detector knob at construction time.
type Option func(*detector)

// WithLogger routes sweep diagnostics through l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("detect: WithLogger requires a non-nil logger")
	}
	return func(d *detector) { d.log = l }
}

// WithWeights overrides the entity weights used by graph construction.
func WithWeights(w core.Weights) Option {
	return func(d *detector) { d.weights = w }
}

// WithDenseBackend builds detection graphs on the dense adjacency backend.
func WithDenseBackend() Option {
	return func(d *detector) { d.dense = true }
}
