package machines

import "github.com/aretw0/spool/pkg/domain"

// Palindrome returns a machine that accepts binary palindromes.
//
// It checks symbols outside-in: the first unmarked symbol is marked with
// X and remembered in the state, the head runs to the far end and the
// last unmarked symbol must match it. A mismatch hits an undefined
// transition and rejects implicitly. The empty input is vacuously a
// palindrome and accepts.
func Palindrome() *domain.Machine {
	return &domain.Machine{
		Name: "palindrome",
		Description: `# Palindrome Checker

Accepts binary strings that read the same forwards and backwards.

* ` + "`1001`" + ` is accepted
* ` + "`1101`" + ` is rejected
* the empty string is vacuously a palindrome

Symbols are checked outside-in, marking compared cells with ` + "`X`" + `.
A mismatched pair has no transition defined and rejects implicitly.`,
		States: []domain.State{
			"start", "check_0", "check_1", "match_0", "match_1", "rewind",
			"accept", "reject",
		},
		InputAlphabet: []domain.Symbol{'0', '1'},
		TapeAlphabet:  []domain.Symbol{'0', '1', 'X', '_'},
		Transitions: domain.TransitionTable{
			// Mark the first unchecked symbol and remember it. Nothing
			// left to check means palindrome.
			{State: "start", Read: '0'}: {Next: "check_0", Write: 'X', Move: domain.MoveRight},
			{State: "start", Read: '1'}: {Next: "check_1", Write: 'X', Move: domain.MoveRight},
			{State: "start", Read: 'X'}: {Next: "accept", Write: 'X', Move: domain.MoveNone},
			{State: "start", Read: '_'}: {Next: "accept", Write: '_', Move: domain.MoveNone},

			// Run to the right boundary while remembering a '0'.
			{State: "check_0", Read: '0'}: {Next: "check_0", Write: '0', Move: domain.MoveRight},
			{State: "check_0", Read: '1'}: {Next: "check_0", Write: '1', Move: domain.MoveRight},
			{State: "check_0", Read: 'X'}: {Next: "match_0", Write: 'X', Move: domain.MoveLeft},
			{State: "check_0", Read: '_'}: {Next: "match_0", Write: '_', Move: domain.MoveLeft},

			// Run to the right boundary while remembering a '1'.
			{State: "check_1", Read: '0'}: {Next: "check_1", Write: '0', Move: domain.MoveRight},
			{State: "check_1", Read: '1'}: {Next: "check_1", Write: '1', Move: domain.MoveRight},
			{State: "check_1", Read: 'X'}: {Next: "match_1", Write: 'X', Move: domain.MoveLeft},
			{State: "check_1", Read: '_'}: {Next: "match_1", Write: '_', Move: domain.MoveLeft},

			// The last unmarked symbol must match the remembered one.
			// The mismatching digit has no entry on purpose: it rejects
			// implicitly. Landing on the mark itself means the middle of
			// an odd-length input: palindrome.
			{State: "match_0", Read: '0'}: {Next: "rewind", Write: 'X', Move: domain.MoveLeft},
			{State: "match_0", Read: 'X'}: {Next: "accept", Write: 'X', Move: domain.MoveNone},
			{State: "match_1", Read: '1'}: {Next: "rewind", Write: 'X', Move: domain.MoveLeft},
			{State: "match_1", Read: 'X'}: {Next: "accept", Write: 'X', Move: domain.MoveNone},

			// Walk back to the first unchecked symbol for the next round.
			{State: "rewind", Read: '0'}: {Next: "rewind", Write: '0', Move: domain.MoveLeft},
			{State: "rewind", Read: '1'}: {Next: "rewind", Write: '1', Move: domain.MoveLeft},
			{State: "rewind", Read: 'X'}: {Next: "start", Write: 'X', Move: domain.MoveRight},
		},
		InitialState: "start",
		AcceptStates: []domain.State{"accept"},
		RejectStates: []domain.State{"reject"},
	}
}
