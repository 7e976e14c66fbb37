package machines_test

import (
	"context"
	"testing"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/machines"
)

func TestBinaryIncrement(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1", "10"},
		{"10", "11"},
		{"11", "100"},
		{"1011", "1100"},
		{"1111", "10000"},
		{"0", "1"},
	}

	eng, err := spool.New(machines.BinaryIncrement())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			res := eng.Run(context.Background(), tc.input)
			if !res.Accepted {
				t.Fatalf("increment of %q should accept, halted %q in %q", tc.input, res.Outcome, res.FinalState)
			}
			if res.Tape != tc.want {
				t.Errorf("increment of %q = %q, want %q", tc.input, res.Tape, tc.want)
			}
		})
	}
}

func TestBinaryIncrement_EmptyInputRejects(t *testing.T) {
	eng, err := spool.New(machines.BinaryIncrement())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}

	res := eng.Run(context.Background(), "")
	if res.Accepted {
		t.Error("empty input should reject")
	}
	if res.FinalState != "reject" {
		t.Errorf("expected final state 'reject', got %q", res.FinalState)
	}
}

func TestPalindrome(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true}, // a single blank cell, vacuously a palindrome
		{"1", true},
		{"11", true},
		{"10", false},
		{"101", true},
		{"1001", true},
		{"1101", false},
		{"11011", true},
		{"10101", true},
		{"100", false},
	}

	eng, err := spool.New(machines.Palindrome())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}

	for _, tc := range cases {
		name := tc.input
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			res := eng.Run(context.Background(), tc.input)
			if res.Accepted != tc.want {
				t.Errorf("palindrome(%q) accepted=%v, want %v (outcome %q)", tc.input, res.Accepted, tc.want, res.Outcome)
			}
		})
	}
}

func TestPalindrome_MismatchRejectsImplicitly(t *testing.T) {
	eng, err := spool.New(machines.Palindrome())
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}

	res := eng.Run(context.Background(), "10")
	if res.Outcome != domain.StatusRejected {
		t.Fatalf("expected rejection, got %q", res.Outcome)
	}
	// The mismatch has no transition entry, so the halt lands in the
	// machine's sole rejecting state via the implicit-rejection policy.
	if res.FinalState != "reject" {
		t.Errorf("expected final state 'reject', got %q", res.FinalState)
	}
}

func TestBuiltin(t *testing.T) {
	reg := machines.Builtin()

	names := reg.Names()
	want := []string{"binary-increment", "palindrome"}
	if len(names) != len(want) {
		t.Fatalf("expected %d machines, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected machine %q at position %d, got %q", name, i, names[i])
		}
	}

	for _, name := range want {
		m, err := reg.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if _, err := spool.New(m); err != nil {
			t.Errorf("bundled machine %q failed validation: %v", name, err)
		}
	}
}
