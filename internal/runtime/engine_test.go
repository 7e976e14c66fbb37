package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/spool/internal/runtime"
	"github.com/aretw0/spool/pkg/domain"
)

// moveRightMachine writes back what it reads and walks right until it
// falls off the input onto a blank, then accepts.
func moveRightMachine() *domain.Machine {
	return &domain.Machine{
		Name:          "move-right",
		States:        []domain.State{"scan", "done"},
		InputAlphabet: []domain.Symbol{'1'},
		TapeAlphabet:  []domain.Symbol{'1', '_'},
		Transitions: domain.TransitionTable{
			{State: "scan", Read: '1'}: {Next: "scan", Write: '1', Move: domain.MoveRight},
			{State: "scan", Read: '_'}: {Next: "done", Write: '_', Move: domain.MoveNone},
		},
		InitialState: "scan",
		AcceptStates: []domain.State{"done"},
	}
}

func TestEngine_Load(t *testing.T) {
	eng, err := runtime.NewEngine(moveRightMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ctx := context.Background()
	eng.Load(ctx, "111")

	st := eng.State()
	if st == nil {
		t.Fatal("expected run state after Load")
	}
	if st.Head != 0 {
		t.Errorf("expected head at 0, got %d", st.Head)
	}
	if st.Current != "scan" {
		t.Errorf("expected initial state 'scan', got %q", st.Current)
	}
	if st.Steps != 0 {
		t.Errorf("expected step counter 0, got %d", st.Steps)
	}
	if st.Status != domain.StatusRunning {
		t.Errorf("expected running status, got %q", st.Status)
	}
	if st.Tape.Len() != 3 {
		t.Errorf("expected 3 tape cells, got %d", st.Tape.Len())
	}
}

func TestEngine_Load_EmptyInput(t *testing.T) {
	eng, err := runtime.NewEngine(moveRightMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	eng.Load(context.Background(), "")

	st := eng.State()
	if st.Tape.Len() != 1 {
		t.Fatalf("empty input should materialize a single blank cell, got %d", st.Tape.Len())
	}
	if st.Tape.Read(0) != '_' {
		t.Errorf("expected blank cell, got %q", st.Tape.Read(0))
	}
}

func TestEngine_Load_ResetsPreviousRun(t *testing.T) {
	eng, err := runtime.NewEngine(moveRightMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ctx := context.Background()
	// Three moves over the input plus the final no-move transition onto
	// the blank that enters "done".
	res := eng.Run(ctx, "111", 0)
	if !res.Accepted || res.Steps != 4 {
		t.Fatalf("first run: accepted=%v steps=%d, want accepted with 4 steps", res.Accepted, res.Steps)
	}

	eng.Load(ctx, "1")
	st := eng.State()
	if st.Steps != 0 || st.Head != 0 || st.Current != "scan" || st.Status != domain.StatusRunning {
		t.Errorf("Load must fully reset the run state, got %+v", st)
	}
}

func TestEngine_Run_Accepts(t *testing.T) {
	eng, err := runtime.NewEngine(moveRightMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	res := eng.Run(context.Background(), "11", 0)

	if !res.Accepted {
		t.Error("expected run to accept")
	}
	if res.Outcome != domain.StatusAccepted {
		t.Errorf("expected accepted outcome, got %q", res.Outcome)
	}
	// Two moves over the input plus the final no-move transition onto the
	// blank that enters "done".
	if res.Steps != 3 {
		t.Errorf("expected 3 steps, got %d", res.Steps)
	}
	if res.Tape != "11" {
		t.Errorf("expected tape rendering '11', got %q", res.Tape)
	}
	if res.FinalState != "done" {
		t.Errorf("expected final state 'done', got %q", res.FinalState)
	}
}

func TestEngine_Run_Deterministic(t *testing.T) {
	eng, err := runtime.NewEngine(moveRightMachine())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ctx := context.Background()
	first := eng.Run(ctx, "111", 0)
	for i := 0; i < 5; i++ {
		got := eng.Run(ctx, "111", 0)
		if *got != *first {
			t.Fatalf("run %d diverged: got %+v, want %+v", i, got, first)
		}
	}
}

func TestEngine_Run_AcceptingInitialState(t *testing.T) {
	m := moveRightMachine()
	m.InitialState = "done"

	eng, err := runtime.NewEngine(m)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	res := eng.Run(context.Background(), "1", 0)
	if !res.Accepted {
		t.Error("expected immediate acceptance")
	}
	if res.Steps != 0 {
		t.Errorf("expected 0 steps, got %d", res.Steps)
	}
}

func TestEngine_TapeGrowthBound(t *testing.T) {
	// Walks left forever over blanks, forcing a front extension per step.
	m := &domain.Machine{
		Name:          "walk-left",
		States:        []domain.State{"walk"},
		InputAlphabet: []domain.Symbol{'1'},
		TapeAlphabet:  []domain.Symbol{'1', '_'},
		Transitions: domain.TransitionTable{
			{State: "walk", Read: '1'}: {Next: "walk", Write: '1', Move: domain.MoveLeft},
			{State: "walk", Read: '_'}: {Next: "walk", Write: '_', Move: domain.MoveLeft},
		},
		InitialState: "walk",
	}

	eng, err := runtime.NewEngine(m)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ctx := context.Background()
	eng.Load(ctx, "111")
	initial := eng.State().Tape.Len()

	const n = 50
	for i := 0; i < n; i++ {
		eng.Step(ctx)
		st := eng.State()
		// Between steps the head may rest one cell past the materialized
		// region; the next boundary-extension check brings it back.
		if st.Head < -1 || st.Head > st.Tape.Len() {
			t.Fatalf("head %d strayed beyond one cell of the tape [0,%d) after step %d", st.Head, st.Tape.Len(), i+1)
		}
	}

	if got := eng.State().Tape.Len(); got > initial+n {
		t.Errorf("tape grew to %d cells after %d steps, bound is %d", got, n, initial+n)
	}
}

func TestEngine_TraceHooks(t *testing.T) {
	var loads, steps, halts int
	hooks := domain.TraceHooks{
		OnLoad: func(_ context.Context, ev *domain.StepEvent) {
			loads++
			if ev.Step != 0 {
				t.Errorf("load event should carry step 0, got %d", ev.Step)
			}
		},
		OnStep: func(_ context.Context, ev *domain.StepEvent) { steps++ },
		OnHalt: func(_ context.Context, ev *domain.HaltEvent) {
			halts++
			if ev.Outcome != domain.StatusAccepted {
				t.Errorf("expected accepted halt, got %q", ev.Outcome)
			}
		},
	}

	eng, err := runtime.NewEngine(moveRightMachine(), runtime.WithTraceHooks(hooks))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	eng.Run(context.Background(), "1", 0)

	if loads != 1 {
		t.Errorf("expected 1 load event, got %d", loads)
	}
	if steps != 2 {
		t.Errorf("expected 2 step events, got %d", steps)
	}
	if halts != 1 {
		t.Errorf("expected 1 halt event, got %d", halts)
	}
}
