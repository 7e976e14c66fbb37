package domain

// State identifies a machine state ("start", "carry", "accept"...).
type State string

// Symbol is a single tape cell value.
type Symbol rune

// Direction tells the engine where to move the head after a write.
type Direction string

const (
	// MoveLeft moves the head one cell to the left.
	MoveLeft Direction = "L"
	// MoveRight moves the head one cell to the right.
	MoveRight Direction = "R"
	// MoveNone keeps the head in place. Any directive the engine does not
	// recognize behaves exactly like MoveNone; unknown directions are not
	// an error.
	MoveNone Direction = "N"
)

// DefaultBlank is the blank symbol used when a Machine does not set one.
const DefaultBlank Symbol = '_'

// SentinelReject is the state the engine halts in when a transition is
// undefined and the machine declares no rejecting states. It is not a
// member of the machine's state set.
const SentinelReject State = "REJECT"

// TransitionKey addresses one entry of the transition table.
type TransitionKey struct {
	State State
	Read  Symbol
}

// TransitionRule is the action taken for a matched key: write a symbol,
// switch state, move the head.
type TransitionRule struct {
	Next  State
	Write Symbol
	Move  Direction
}

// TransitionTable maps (state, symbol read) pairs to rules. The table is
// partial by design: a missing entry means immediate rejection, not a
// fault.
type TransitionTable map[TransitionKey]TransitionRule

// Machine is the immutable definition of a single-tape Turing machine.
// It is shared read-only input: the engine never mutates it, and one
// Machine value may back any number of independently-run engines.
type Machine struct {
	// Name identifies the machine in registries, logs and metrics.
	Name string

	// Description is optional markdown shown by presentation layers.
	// The engine never reads it.
	Description string

	// States is the full state set. InitialState, AcceptStates and
	// RejectStates must all be members.
	States []State

	// InputAlphabet lists the symbols expected in run input. Input is not
	// validated against it; a foreign symbol simply fails transition
	// lookup later.
	InputAlphabet []Symbol

	// TapeAlphabet is a superset of InputAlphabet and includes Blank.
	TapeAlphabet []Symbol

	// Transitions is the (partial) transition table.
	Transitions TransitionTable

	// InitialState is where every run starts.
	InitialState State

	// AcceptStates and RejectStates are the absorbing halting sets.
	// They must be disjoint.
	AcceptStates []State
	RejectStates []State

	// DefaultReject, when set, is the state an undefined transition halts
	// in. It must be a member of RejectStates. When empty, the engine
	// picks the lexicographically smallest rejecting state so that the
	// choice stays deterministic, or SentinelReject if RejectStates is
	// empty.
	DefaultReject State

	// Blank seeds newly materialized tape cells. Zero value means
	// DefaultBlank.
	Blank Symbol
}

// BlankSymbol returns the effective blank symbol for the machine.
func (m *Machine) BlankSymbol() Symbol {
	if m.Blank == 0 {
		return DefaultBlank
	}
	return m.Blank
}
