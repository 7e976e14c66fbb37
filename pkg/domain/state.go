package domain

import "github.com/aretw0/spool/pkg/tape"

// Status defines the current mode of the engine mechanics.
type Status string

const (
	StatusRunning   Status = "running"   // Normal operation
	StatusAccepted  Status = "accepted"  // Halted in an accepting state
	StatusRejected  Status = "rejected"  // Halted in a rejecting state (explicit or implicit)
	StatusExhausted Status = "exhausted" // Step budget consumed before any halting state
)

// Halted reports whether the status is terminal for this run.
func (s Status) Halted() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExhausted
}

// RunState is the mutable snapshot of one execution. It is owned
// exclusively by a single engine instance: it is (re)initialized by Load,
// mutated only by Step and discarded by the next Load.
type RunState struct {
	// Tape is the working memory, materialized lazily in both directions.
	Tape *tape.Tape

	// Head is the read/write cursor. It may sit one cell outside the
	// materialized tape between steps; the boundary-extension check at
	// the top of Step brings it back into range.
	Head int

	// Current is the active state identifier.
	Current State

	// Steps counts executed transitions. Halting checks and implicit
	// rejection do not increment it.
	Steps int

	// Status classifies the run: running, accepted, rejected, exhausted.
	Status Status
}
