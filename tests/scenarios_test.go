// Package tests holds cross-package scenario tests: whole runs through
// the public facade, checked against hand-traced configurations.
package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/machines"
)

// Hand-traced runs of the binary increment machine. The step counts
// include the final transition into the accepting state.
func TestBinaryIncrementScenarios(t *testing.T) {
	cases := []struct {
		input   string
		tape    string
		steps   int
		outcome domain.Status
	}{
		{"1", "10", 4, domain.StatusAccepted},
		{"1011", "1100", 8, domain.StatusAccepted},
		{"1111", "10000", 10, domain.StatusAccepted},
		{"0", "1", 3, domain.StatusAccepted},
		// The empty input takes the explicit blank transition into the
		// rejecting state, so it still counts one step.
		{"", "", 1, domain.StatusRejected},
	}

	eng, err := spool.New(machines.BinaryIncrement())
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run("input_"+tc.input, func(t *testing.T) {
			res := eng.Run(context.Background(), tc.input)
			assert.Equal(t, tc.outcome, res.Outcome)
			assert.Equal(t, tc.steps, res.Steps, "step count for %q", tc.input)
			if tc.outcome == domain.StatusAccepted {
				assert.Equal(t, tc.tape, res.Tape)
			}
		})
	}
}

func TestPalindromeScenarios(t *testing.T) {
	cases := []struct {
		input    string
		accepted bool
	}{
		{"", true},
		{"0", true},
		{"1", true},
		{"11", true},
		{"1001", true},
		{"11011", true},
		{"10", false},
		{"1101", false},
		{"100", false},
	}

	eng, err := spool.New(machines.Palindrome())
	require.NoError(t, err)

	for _, tc := range cases {
		res := eng.Run(context.Background(), tc.input)
		assert.Equal(t, tc.accepted, res.Accepted, "input %q", tc.input)
	}
}

// Repeated runs of the same engine must produce identical results: runs
// are isolated, and the machine definition is never mutated.
func TestRunsAreReproducible(t *testing.T) {
	eng, err := spool.New(machines.Palindrome())
	require.NoError(t, err)

	first := eng.Run(context.Background(), "110011")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eng.Run(context.Background(), "110011"))
	}
}

// One Machine value backing many engines concurrently. The engines own
// all mutable state, so parallel runs must not interfere.
func TestConcurrentEnginesShareOneMachine(t *testing.T) {
	machine := machines.BinaryIncrement()

	done := make(chan *domain.Result)
	for i := 0; i < 16; i++ {
		go func() {
			eng, err := spool.New(machine)
			if err != nil {
				done <- nil
				return
			}
			done <- eng.Run(context.Background(), "1011")
		}()
	}

	for i := 0; i < 16; i++ {
		res := <-done
		require.NotNil(t, res)
		assert.True(t, res.Accepted)
		assert.Equal(t, "1100", res.Tape)
		assert.Equal(t, 8, res.Steps)
	}
}

// Exhausted runs report the widened outcome while the legacy Accepted
// flag stays false.
func TestBudgetExhaustionOutcome(t *testing.T) {
	eng, err := spool.New(machines.BinaryIncrement())
	require.NoError(t, err)

	res := eng.Run(context.Background(), "1011", spool.WithStepLimit(3))
	assert.False(t, res.Accepted)
	assert.Equal(t, domain.StatusExhausted, res.Outcome)
	assert.Equal(t, 3, res.Steps)
}
