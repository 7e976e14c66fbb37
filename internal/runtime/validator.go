package runtime

import (
	"fmt"

	"github.com/aretw0/spool/pkg/domain"
)

// ValidateMachine checks that a definition is structurally sound before
// it is ever executed. Validation is eager on purpose: a broken machine
// fails at construction instead of silently misbehaving mid-run.
//
// Only the definition is checked. Run input stays unvalidated, matching
// the engine's lax runtime policy (a symbol outside the alphabet fails
// transition lookup and rejects, it does not fault).
func ValidateMachine(m *domain.Machine) error {
	if m == nil {
		return fmt.Errorf("cannot compile nil machine")
	}

	if len(m.States) == 0 {
		return defErr(m, "states", "state set is empty")
	}

	states := stateSet(m.States)
	if _, ok := states[m.InitialState]; !ok {
		return defErr(m, "initial_state", fmt.Sprintf("%q is not a member of the state set", m.InitialState))
	}

	accept := stateSet(m.AcceptStates)
	for _, s := range m.RejectStates {
		if _, ok := accept[s]; ok {
			return defErr(m, "reject_states", fmt.Sprintf("state %q is both accepting and rejecting", s))
		}
	}
	for _, s := range m.AcceptStates {
		if _, ok := states[s]; !ok {
			return defErr(m, "accept_states", fmt.Sprintf("%q is not a member of the state set", s))
		}
	}
	for _, s := range m.RejectStates {
		if _, ok := states[s]; !ok {
			return defErr(m, "reject_states", fmt.Sprintf("%q is not a member of the state set", s))
		}
	}

	tapeAlphabet := symbolSet(m.TapeAlphabet)
	if _, ok := tapeAlphabet[m.BlankSymbol()]; !ok {
		return defErr(m, "tape_alphabet", fmt.Sprintf("blank symbol %q is not in the tape alphabet", m.BlankSymbol()))
	}

	for key, rule := range m.Transitions {
		if _, ok := states[key.State]; !ok {
			return defErr(m, "transitions", fmt.Sprintf("source state %q is not a member of the state set", key.State))
		}
		if _, ok := states[rule.Next]; !ok {
			return defErr(m, "transitions", fmt.Sprintf("target state %q is not a member of the state set", rule.Next))
		}
		if _, ok := tapeAlphabet[rule.Write]; !ok {
			return defErr(m, "transitions", fmt.Sprintf("write symbol %q is not in the tape alphabet", rule.Write))
		}
	}

	if m.DefaultReject != "" {
		reject := stateSet(m.RejectStates)
		if _, ok := reject[m.DefaultReject]; !ok {
			return defErr(m, "default_reject", fmt.Sprintf("%q is not a rejecting state", m.DefaultReject))
		}
	}

	return nil
}

func defErr(m *domain.Machine, field, reason string) error {
	return &domain.DefinitionError{Machine: m.Name, Field: field, Reason: reason}
}

func symbolSet(symbols []domain.Symbol) map[domain.Symbol]struct{} {
	set := make(map[domain.Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}
