package domain

import (
	"errors"
	"fmt"
)

// ErrMachineNotFound is returned when a registry lookup misses.
var ErrMachineNotFound = errors.New("machine not found")

// DefinitionError reports a structurally invalid Machine at construction
// time. Runtime behavior stays lax (foreign input symbols just fail
// transition lookup); only the definition itself is validated eagerly.
type DefinitionError struct {
	Machine string
	Field   string
	Reason  string
}

func (e *DefinitionError) Error() string {
	if e.Machine == "" {
		return fmt.Sprintf("invalid machine definition: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid machine definition %q: %s: %s", e.Machine, e.Field, e.Reason)
}
