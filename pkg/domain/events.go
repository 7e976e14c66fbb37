package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLoad EventType = "load"
	EventStep EventType = "step"
	EventHalt EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine,omitempty"`
}

// StepEvent describes one configuration of the machine: the state, head
// position and tape rendering either right after Load (Step == 0) or
// right after an executed transition.
type StepEvent struct {
	EventBase
	State State  `json:"state"`
	Head  int    `json:"head"`
	Step  int    `json:"step"`
	Tape  string `json:"tape"`
}

// HaltEvent describes the terminal configuration of a run.
type HaltEvent struct {
	EventBase
	Outcome    Status `json:"outcome"`
	FinalState State  `json:"final_state"`
	Steps      int    `json:"steps"`
	Tape       string `json:"tape"`
}

// TraceHooks defines callbacks for engine observability. All hooks are
// optional and are invoked synchronously on the run goroutine; a nil
// field is simply skipped.
type TraceHooks struct {
	OnLoad func(context.Context, *StepEvent)
	OnStep func(context.Context, *StepEvent)
	OnHalt func(context.Context, *HaltEvent)
}

// Merge returns hooks that invoke the receiver's callbacks and then
// other's. Useful for stacking tracing and metrics.
func (h TraceHooks) Merge(other TraceHooks) TraceHooks {
	return TraceHooks{
		OnLoad: mergeHook(h.OnLoad, other.OnLoad),
		OnStep: mergeHook(h.OnStep, other.OnStep),
		OnHalt: mergeHook(h.OnHalt, other.OnHalt),
	}
}

func mergeHook[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, ev E) {
		a(ctx, ev)
		b(ctx, ev)
	}
}
