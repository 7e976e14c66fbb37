package spool

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/spool/internal/runtime"
	"github.com/aretw0/spool/pkg/domain"
)

// Version is the library version reported by adapters and the CLI.
var Version = "0.1.0"

// Engine is the high-level entry point for the Spool library. It wraps
// the internal runtime and provides a simplified API for consumers.
//
// One Engine owns one RunState: it runs a single input at a time. The
// Machine definition it wraps is never mutated and may back any number of
// engines, so concurrent runs of the same machine just use one Engine
// per goroutine.
type Engine struct {
	runtime *runtime.Engine
	machine *domain.Machine

	logger   *slog.Logger
	hooks    domain.TraceHooks
	maxSteps int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTraceHooks registers observability hooks. Hooks see every loaded
// configuration, every executed transition and the terminal halt.
func WithTraceHooks(hooks domain.TraceHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithMaxSteps sets the default step budget for runs (default 10000).
// Individual runs can still override it with WithStepLimit.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// New compiles a Machine into a ready-to-run Engine. The definition is
// validated eagerly: a machine with an unknown initial state, overlapping
// accept/reject sets, or writes outside the tape alphabet fails here, not
// mid-run.
func New(machine *domain.Machine, opts ...Option) (*Engine, error) {
	eng := &Engine{machine: machine}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if machine != nil && machine.Name != "" {
		eng.logger = eng.logger.With("machine", machine.Name)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithTraceHooks(eng.hooks),
	}
	if eng.maxSteps > 0 {
		runtimeOpts = append(runtimeOpts, runtime.WithMaxSteps(eng.maxSteps))
	}

	rt, err := runtime.NewEngine(machine, runtimeOpts...)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt

	return eng, nil
}

// Machine returns the immutable definition behind this engine.
func (e *Engine) Machine() *domain.Machine {
	return e.machine
}

// Load places input on a fresh tape and resets the run state. Any
// previous run is discarded.
func (e *Engine) Load(ctx context.Context, input string) {
	e.runtime.Load(ctx, input)
}

// Step executes exactly one transition of the loaded run. It returns
// true while the machine keeps running and false once it has halted;
// halted runs are absorbing.
func (e *Engine) Step(ctx context.Context) bool {
	return e.runtime.Step(ctx)
}

// State returns the engine-owned run state, or nil before the first
// Load. Callers must treat it as read-only.
func (e *Engine) State() *domain.RunState {
	return e.runtime.State()
}

// Result snapshots the current run as the host-facing triple of
// (accepted, steps, final tape), plus the widened outcome.
func (e *Engine) Result() *domain.Result {
	return e.runtime.Result()
}
