// Package tui renders machine configurations for terminal output.
package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/spool/pkg/domain"
)

// NewMarkdownRenderer returns a function that renders markdown using
// glamour. Used for machine descriptions in `spool describe`.
func NewMarkdownRenderer() func(string) (string, error) {
	// Automatically detect light/dark background.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ConfigLine formats one machine configuration for trace output: the
// step number, current state and the tape with the head cell
// highlighted.
func ConfigLine(ev *domain.StepEvent) string {
	p := termenv.ColorProfile()

	cells := []rune(ev.Tape)
	var tape string
	switch {
	case ev.Head >= 0 && ev.Head < len(cells):
		head := termenv.String(string(cells[ev.Head])).
			Reverse().
			Foreground(p.Color("#a78bfa")).
			String()
		tape = string(cells[:ev.Head]) + head + string(cells[ev.Head+1:])
	case ev.Head < 0:
		// Head rests one cell left of the materialized tape.
		tape = termenv.String("·").Faint().String() + string(cells)
	default:
		tape = string(cells) + termenv.String("·").Faint().String()
	}

	state := termenv.String(string(ev.State)).Foreground(p.Color("#818cf8")).String()
	return fmt.Sprintf("%4d  %-14s %s", ev.Step, state, tape)
}

// HaltLine formats the terminal configuration of a run.
func HaltLine(ev *domain.HaltEvent) string {
	p := termenv.ColorProfile()

	var status termenv.Style
	switch ev.Outcome {
	case domain.StatusAccepted:
		status = termenv.String("ACCEPTED").Foreground(p.Color("#34d399")).Bold()
	case domain.StatusExhausted:
		status = termenv.String("EXHAUSTED").Foreground(p.Color("#fbbf24")).Bold()
	default:
		status = termenv.String("REJECTED").Foreground(p.Color("#fb7185")).Bold()
	}

	return fmt.Sprintf("%s in %d steps, tape %q (state %s)",
		status, ev.Steps, ev.Tape, ev.FinalState)
}
