package runtime

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/tape"
)

// DefaultMaxSteps is the step budget used when a run does not set one.
const DefaultMaxSteps = 10000

// Engine is the core Turing machine runner. It owns exactly one RunState
// at a time: Load resets it, Step mutates it, and nothing else touches
// it. The compiled definition is read-only and may be derived from a
// Machine shared across many engines.
//
// The engine is fully synchronous and not safe for concurrent use; run
// concurrent inputs on separate instances.
type Engine struct {
	machine *domain.Machine
	rules   domain.TransitionTable
	accept  map[domain.State]struct{}
	reject  map[domain.State]struct{}

	// defaultReject is where an undefined transition halts. Resolved once
	// at construction so implicit rejection stays deterministic even when
	// the machine declares several rejecting states.
	defaultReject domain.State

	blank    domain.Symbol
	maxSteps int
	hooks    domain.TraceHooks
	logger   *slog.Logger

	state *domain.RunState
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTraceHooks registers observability callbacks.
func WithTraceHooks(hooks domain.TraceHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMaxSteps sets the default step budget for Run (default 10000).
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// NewEngine compiles a Machine into a runnable engine. The definition is
// validated eagerly; a structurally broken machine never executes.
func NewEngine(m *domain.Machine, opts ...EngineOption) (*Engine, error) {
	if err := ValidateMachine(m); err != nil {
		return nil, err
	}

	e := &Engine{
		machine:  m,
		rules:    m.Transitions,
		accept:   stateSet(m.AcceptStates),
		reject:   stateSet(m.RejectStates),
		blank:    m.BlankSymbol(),
		maxSteps: DefaultMaxSteps,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	e.defaultReject = resolveDefaultReject(m)

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Machine returns the definition this engine was compiled from.
func (e *Engine) Machine() *domain.Machine {
	return e.machine
}

// State returns the current RunState, or nil before the first Load.
// The returned value is owned by the engine; callers must treat it as
// read-only.
func (e *Engine) State() *domain.RunState {
	return e.state
}

// Load places the input on a fresh tape and fully resets the run: head at
// cell 0, current state set to the initial state, step counter zeroed.
// Input symbols are not validated against the alphabet; a foreign symbol
// simply fails transition lookup later.
func (e *Engine) Load(ctx context.Context, input string) {
	e.state = &domain.RunState{
		Tape:    tape.New([]rune(input), rune(e.blank)),
		Head:    0,
		Current: e.machine.InitialState,
		Steps:   0,
		Status:  domain.StatusRunning,
	}

	// An initial state inside a halting set makes the run terminal before
	// any transition executes.
	e.classify()

	e.logger.Debug("input loaded", "input", input, "state", e.state.Current)
	e.emitLoad(ctx)
}

// Step executes exactly one transition. It returns true while the machine
// keeps running and false once it has halted. Halted runs are absorbing:
// further calls return false without touching the tape or the counter.
//
// Order of operations inside one call: boundary extension, symbol read,
// transition lookup, write/move/count. A missing transition halts the run
// in the default rejecting state without incrementing the counter; this
// implicit rejection is the engine's only error-recovery policy.
func (e *Engine) Step(ctx context.Context) bool {
	st := e.state
	if st == nil || st.Status.Halted() {
		return false
	}

	// The tape grows by at most one cell per step, in whichever direction
	// the head has moved past the materialized region.
	if st.Head < 0 {
		st.Tape.GrowLeft()
		st.Head = 0
	} else if st.Head >= st.Tape.Len() {
		st.Tape.GrowRight()
	}

	read := domain.Symbol(st.Tape.Read(st.Head))

	rule, ok := e.rules[domain.TransitionKey{State: st.Current, Read: read}]
	if !ok {
		e.logger.Debug("undefined transition, rejecting",
			"state", st.Current, "symbol", string(rune(read)), "reject_state", e.defaultReject)
		st.Current = e.defaultReject
		st.Status = domain.StatusRejected
		e.emitHalt(ctx)
		return false
	}

	st.Tape.Write(st.Head, rune(rule.Write))
	st.Current = rule.Next

	switch rule.Move {
	case domain.MoveRight:
		st.Head++
	case domain.MoveLeft:
		st.Head--
	default:
		// MoveNone and any unrecognized directive: head stays put.
	}

	st.Steps++

	e.classify()
	e.emitStep(ctx)
	if st.Status.Halted() {
		e.emitHalt(ctx)
	}
	return true
}

// Run loads the input and steps until the machine halts or the budget is
// spent. A maxSteps of zero or less means DefaultMaxSteps (or the engine
// override).
func (e *Engine) Run(ctx context.Context, input string, maxSteps int) *domain.Result {
	if maxSteps <= 0 {
		maxSteps = e.maxSteps
	}

	e.Load(ctx, input)

	for e.state.Status == domain.StatusRunning && e.state.Steps < maxSteps {
		e.Step(ctx)
	}

	if e.state.Status == domain.StatusRunning {
		e.state.Status = domain.StatusExhausted
		e.logger.Debug("step budget exhausted", "max_steps", maxSteps)
		e.emitHalt(ctx)
	}

	res := e.Result()
	e.logger.Info("run finished",
		"machine", e.machine.Name,
		"outcome", res.Outcome,
		"steps", res.Steps,
		"tape", res.Tape)
	return res
}

// Result snapshots the current run as a host-facing triple. Valid after
// Load; typically read once the run has halted.
func (e *Engine) Result() *domain.Result {
	st := e.state
	if st == nil {
		return nil
	}
	return &domain.Result{
		Accepted:   st.Status == domain.StatusAccepted,
		Outcome:    st.Status,
		Steps:      st.Steps,
		Tape:       st.Tape.Render(),
		FinalState: st.Current,
	}
}

// classify moves the run out of StatusRunning when the current state sits
// in a halting set. Classification happens the moment the state is
// entered, so a halted run never mutates tape or counter again.
func (e *Engine) classify() {
	st := e.state
	if st.Status != domain.StatusRunning {
		return
	}
	if _, ok := e.accept[st.Current]; ok {
		st.Status = domain.StatusAccepted
	} else if _, ok := e.reject[st.Current]; ok {
		st.Status = domain.StatusRejected
	}
}

func (e *Engine) emitLoad(ctx context.Context) {
	if e.hooks.OnLoad == nil {
		return
	}
	e.hooks.OnLoad(ctx, e.stepEvent(domain.EventLoad))
}

func (e *Engine) emitStep(ctx context.Context) {
	if e.hooks.OnStep == nil {
		return
	}
	e.hooks.OnStep(ctx, e.stepEvent(domain.EventStep))
}

func (e *Engine) emitHalt(ctx context.Context) {
	if e.hooks.OnHalt == nil {
		return
	}
	st := e.state
	e.hooks.OnHalt(ctx, &domain.HaltEvent{
		EventBase:  e.eventBase(domain.EventHalt),
		Outcome:    st.Status,
		FinalState: st.Current,
		Steps:      st.Steps,
		Tape:       st.Tape.Render(),
	})
}

func (e *Engine) stepEvent(kind domain.EventType) *domain.StepEvent {
	st := e.state
	return &domain.StepEvent{
		EventBase: e.eventBase(kind),
		State:     st.Current,
		Head:      st.Head,
		Step:      st.Steps,
		Tape:      st.Tape.Render(),
	}
}

func (e *Engine) eventBase(kind domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      kind,
		Machine:   e.machine.Name,
	}
}

func stateSet(states []domain.State) map[domain.State]struct{} {
	set := make(map[domain.State]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// resolveDefaultReject picks the state an undefined transition halts in.
// An explicit DefaultReject wins; otherwise the lexicographically
// smallest rejecting state keeps the choice deterministic across runs and
// implementations. A machine with no rejecting states falls back to the
// SentinelReject identifier, which is outside the state set.
func resolveDefaultReject(m *domain.Machine) domain.State {
	if m.DefaultReject != "" {
		return m.DefaultReject
	}
	if len(m.RejectStates) == 0 {
		return domain.SentinelReject
	}
	sorted := make([]domain.State, len(m.RejectStates))
	copy(sorted, m.RejectStates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[0]
}
