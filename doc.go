/*
Package spool is a deterministic single-tape Turing machine engine.

Given an immutable Machine definition (states, alphabets, a partial
transition table) and an input string, the engine mutates a lazily
materialized tape until the run accepts, rejects, or exhausts its step
budget. The core is synchronous and allocation-light; I/O, presentation
and persistence live in adapters, following Hexagonal Architecture
principles.

# Semantics

  - The tape is conceptually infinite in both directions and grows by at
    most one cell per step, in whichever direction the head has moved.
  - Accepting and rejecting states are absorbing: once entered, further
    steps are no-ops.
  - An undefined (state, symbol) pair is lawful and means immediate
    rejection in the machine's default rejecting state. It is never
    surfaced as an error and does not count as an executed step.
  - Step-budget exhaustion is reported as its own outcome; the legacy
    two-way accepted/not-accepted view is preserved in Result.Accepted.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/spool"
		"github.com/aretw0/spool/pkg/machines"
	)

	func main() {
		eng, err := spool.New(machines.BinaryIncrement())
		if err != nil {
			log.Fatal(err)
		}

		res := eng.Run(context.Background(), "1011")
		fmt.Println(res.Tape, res.Accepted, res.Steps) // 1100 true ...
	}

Custom machines are plain Go values; see pkg/domain. The engine consumes
already-constructed transition tables only — there is no machine file
format to parse.
*/
package spool
