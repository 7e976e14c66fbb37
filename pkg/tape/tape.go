// Package tape implements the working memory of a single-tape Turing
// machine: a linear sequence of symbols, conceptually infinite in both
// directions, materialized one cell at a time.
//
// Cells are addressed by logical index 0..Len()-1. GrowLeft prepends a
// blank cell, shifting every logical index up by one; it is backed by a
// split buffer (a reversed negative half and a positive half) so the
// shift costs O(1) instead of moving the whole slice.
package tape

import "strings"

// Tape is a bidirectionally extensible sequence of symbols.
//
// A Tape is owned by exactly one engine run and is not safe for
// concurrent use.
type Tape struct {
	blank rune

	// neg holds cells prepended by GrowLeft, in reverse order: the cell
	// at logical index i < len(neg) lives at neg[len(neg)-1-i].
	neg []rune

	// pos holds the initial input plus cells appended by GrowRight.
	pos []rune
}

// New materializes a tape from the given input symbols. An empty input
// yields a single blank cell, so the head always has a cell to read.
func New(input []rune, blank rune) *Tape {
	cells := input
	if len(cells) == 0 {
		cells = []rune{blank}
	}
	pos := make([]rune, len(cells))
	copy(pos, cells)
	return &Tape{blank: blank, pos: pos}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.neg) + len(t.pos)
}

// Blank returns the symbol used to seed newly materialized cells.
func (t *Tape) Blank() rune {
	return t.blank
}

// Read returns the symbol at logical index i. The index must be within
// [0, Len()); the engine guarantees this via its boundary-extension
// check.
func (t *Tape) Read(i int) rune {
	if i < len(t.neg) {
		return t.neg[len(t.neg)-1-i]
	}
	return t.pos[i-len(t.neg)]
}

// Write stores sym at logical index i, which must be within [0, Len()).
func (t *Tape) Write(i int, sym rune) {
	if i < len(t.neg) {
		t.neg[len(t.neg)-1-i] = sym
		return
	}
	t.pos[i-len(t.neg)] = sym
}

// GrowLeft prepends one blank cell. Every existing cell's logical index
// increases by one.
func (t *Tape) GrowLeft() {
	t.neg = append(t.neg, t.blank)
}

// GrowRight appends one blank cell.
func (t *Tape) GrowRight() {
	t.pos = append(t.pos, t.blank)
}

// Render returns the canonical inspection string: all cells concatenated
// with trailing blanks stripped. Leading and interior blanks are
// preserved. If nothing remains, a single blank is returned.
func (t *Tape) Render() string {
	s := strings.TrimRight(t.String(), string(t.blank))
	if s == "" {
		return string(t.blank)
	}
	return s
}

// String returns every materialized cell, blanks included.
func (t *Tape) String() string {
	var b strings.Builder
	b.Grow(t.Len())
	for i := len(t.neg) - 1; i >= 0; i-- {
		b.WriteRune(t.neg[i])
	}
	for _, r := range t.pos {
		b.WriteRune(r)
	}
	return b.String()
}

// Cells returns a copy of the materialized cells in logical order.
func (t *Tape) Cells() []rune {
	out := make([]rune, 0, t.Len())
	for i := len(t.neg) - 1; i >= 0; i-- {
		out = append(out, t.neg[i])
	}
	out = append(out, t.pos...)
	return out
}
