package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/spool/internal/runtime"
	"github.com/aretw0/spool/pkg/domain"
)

// pingPongMachine bounces between two non-halting states forever.
func pingPongMachine() *domain.Machine {
	return &domain.Machine{
		Name:          "ping-pong",
		States:        []domain.State{"ping", "pong"},
		InputAlphabet: []domain.Symbol{'1'},
		TapeAlphabet:  []domain.Symbol{'1', '_'},
		Transitions: domain.TransitionTable{
			{State: "ping", Read: '1'}: {Next: "pong", Write: '1', Move: domain.MoveNone},
			{State: "pong", Read: '1'}: {Next: "ping", Write: '1', Move: domain.MoveNone},
		},
		InitialState: "ping",
	}
}

func TestEngine_StepBudgetExhaustion(t *testing.T) {
	eng, err := runtime.NewEngine(pingPongMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	res := eng.Run(context.Background(), "1", 100)

	if res.Accepted {
		t.Error("exhausted run must not read as accepted")
	}
	if res.Steps != 100 {
		t.Errorf("expected exactly 100 steps, got %d", res.Steps)
	}
	if res.Outcome != domain.StatusExhausted {
		t.Errorf("expected exhausted outcome, got %q", res.Outcome)
	}
}

func TestEngine_DefaultStepBudget(t *testing.T) {
	eng, err := runtime.NewEngine(pingPongMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	res := eng.Run(context.Background(), "1", 0)
	if res.Steps != runtime.DefaultMaxSteps {
		t.Errorf("expected default budget %d, got %d steps", runtime.DefaultMaxSteps, res.Steps)
	}
}

func TestEngine_WithMaxStepsOption(t *testing.T) {
	eng, err := runtime.NewEngine(pingPongMachine(), runtime.WithMaxSteps(25))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	res := eng.Run(context.Background(), "1", 0)
	if res.Steps != 25 {
		t.Errorf("expected engine-level budget of 25, got %d steps", res.Steps)
	}
}

func TestEngine_ExhaustionEmitsHalt(t *testing.T) {
	var halt *domain.HaltEvent
	hooks := domain.TraceHooks{
		OnHalt: func(_ context.Context, ev *domain.HaltEvent) { halt = ev },
	}

	eng, err := runtime.NewEngine(pingPongMachine(), runtime.WithTraceHooks(hooks))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	eng.Run(context.Background(), "1", 10)

	if halt == nil {
		t.Fatal("expected a halt event")
	}
	if halt.Outcome != domain.StatusExhausted {
		t.Errorf("expected exhausted halt event, got %q", halt.Outcome)
	}
	if halt.Steps != 10 {
		t.Errorf("expected 10 steps in halt event, got %d", halt.Steps)
	}
}
