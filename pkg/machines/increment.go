package machines

import "github.com/aretw0/spool/pkg/domain"

// BinaryIncrement returns a machine that adds one to a binary number.
//
// The head first seeks the rightmost digit, then walks back left adding
// one with carry: a 0 (or a blank, when every digit carried) absorbs the
// carry and the machine accepts. An empty input rejects.
//
//	"1"    -> "10"
//	"1011" -> "1100"
//	"1111" -> "10000"
func BinaryIncrement() *domain.Machine {
	return &domain.Machine{
		Name: "binary-increment",
		Description: `# Binary Increment

Adds one to a binary number.

* **Input**: a binary number, e.g. ` + "`1011`" + `
* **Output**: the number plus one, e.g. ` + "`1100`" + `

The head seeks the rightmost digit, then carries leftwards: each ` + "`1`" + `
becomes ` + "`0`" + ` until a ` + "`0`" + ` or a blank absorbs the carry as ` + "`1`" + `.`,
		States:        []domain.State{"start", "seek_end", "carry", "done", "reject"},
		InputAlphabet: []domain.Symbol{'0', '1'},
		TapeAlphabet:  []domain.Symbol{'0', '1', '_'},
		Transitions: domain.TransitionTable{
			// Move to the rightmost digit.
			{State: "start", Read: '0'}: {Next: "seek_end", Write: '0', Move: domain.MoveRight},
			{State: "start", Read: '1'}: {Next: "seek_end", Write: '1', Move: domain.MoveRight},
			{State: "start", Read: '_'}: {Next: "reject", Write: '_', Move: domain.MoveNone},

			{State: "seek_end", Read: '0'}: {Next: "seek_end", Write: '0', Move: domain.MoveRight},
			{State: "seek_end", Read: '1'}: {Next: "seek_end", Write: '1', Move: domain.MoveRight},
			{State: "seek_end", Read: '_'}: {Next: "carry", Write: '_', Move: domain.MoveLeft},

			// Add one with carry.
			{State: "carry", Read: '0'}: {Next: "done", Write: '1', Move: domain.MoveNone},
			{State: "carry", Read: '1'}: {Next: "carry", Write: '0', Move: domain.MoveLeft},
			{State: "carry", Read: '_'}: {Next: "done", Write: '1', Move: domain.MoveNone},
		},
		InitialState: "start",
		AcceptStates: []domain.State{"done"},
		RejectStates: []domain.State{"reject"},
	}
}
