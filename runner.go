package spool

import (
	"context"

	"github.com/aretw0/spool/pkg/domain"
)

// RunOption adjusts a single run without reconfiguring the engine.
type RunOption func(*runConfig)

type runConfig struct {
	maxSteps int
}

// WithStepLimit overrides the step budget for one run. Zero or negative
// values fall back to the engine default.
func WithStepLimit(n int) RunOption {
	return func(c *runConfig) {
		c.maxSteps = n
	}
}

// Run loads the input and executes the machine to halt or budget
// exhaustion, returning the result triple. It never fails: undefined
// transitions reject and a spent budget reads as not accepted, so there
// is no error path once the engine is constructed.
func (e *Engine) Run(ctx context.Context, input string, opts ...RunOption) *domain.Result {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return e.runtime.Run(ctx, input, cfg.maxSteps)
}
