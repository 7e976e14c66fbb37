/*
Package domain contains the core domain models for the Spool engine.

It defines the fundamental entities of a single-tape Turing machine: the
immutable Machine definition (states, alphabets, transition table), the
mutable RunState owned by an engine during execution, and the Result
triple returned to the host. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Machine: The immutable definition (states, alphabets, transitions).
  - TransitionTable: Partial mapping from (state, symbol) to a rule.
  - RunState: Runtime snapshot of one execution (tape, head, state, steps).
  - Result: What the host sees after a run (accepted, steps, final tape).
  - TraceHooks: Callbacks for observing configurations during a run.
*/
package domain
