package domain

// Result is what a host sees after a run.
//
// The original two-way contract (accepted / not accepted) is preserved in
// Accepted: step-budget exhaustion reads as "not accepted" there. Outcome
// widens the classification to accepted / rejected / exhausted for hosts
// that want to tell the difference.
type Result struct {
	// Accepted is true iff the run halted in an accepting state.
	Accepted bool `json:"accepted"`

	// Outcome is the terminal Status of the run.
	Outcome Status `json:"outcome"`

	// Steps is the number of transitions executed.
	Steps int `json:"steps"`

	// Tape is the canonical rendering of the final tape: cells
	// concatenated, trailing blanks stripped, a single blank if nothing
	// remains. For inspection only; it is never fed back into an engine.
	Tape string `json:"tape"`

	// FinalState is the state the machine halted in. For an implicit
	// rejection with an empty rejecting set this is SentinelReject.
	FinalState State `json:"final_state"`
}
