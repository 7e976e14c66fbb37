// Package cli contains the command logic behind the spool binary,
// separated from flag wiring so it can be tested directly.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/internal/presentation/tui"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/registry"
)

// RunOptions contains all the configuration for the 'run' command.
type RunOptions struct {
	Machine  string
	Input    string
	MaxSteps int
	Trace    bool
	JSON     bool
	Debug    bool
	Quiet    bool
}

// Execute handles the 'run' command logic: resolve the machine, run the
// input and print the result.
func Execute(ctx context.Context, reg *registry.Registry, opts RunOptions) error {
	logger := createLogger(opts.Debug)

	m, err := reg.Get(opts.Machine)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	engineOpts := []spool.Option{spool.WithLogger(logger)}
	if opts.Trace {
		engineOpts = append(engineOpts, spool.WithTraceHooks(traceHooks()))
	}

	eng, err := spool.New(m, engineOpts...)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	res := eng.Run(ctx, opts.Input, spool.WithStepLimit(opts.MaxSteps))

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !opts.Trace && !opts.Quiet {
		printResult(res)
	}
	return nil
}

// traceHooks prints each machine configuration as the run unfolds. The
// load event carries the initial configuration (step 0).
func traceHooks() domain.TraceHooks {
	return domain.TraceHooks{
		OnLoad: func(ctx context.Context, ev *domain.StepEvent) {
			fmt.Println(tui.ConfigLine(ev))
		},
		OnStep: func(ctx context.Context, ev *domain.StepEvent) {
			fmt.Println(tui.ConfigLine(ev))
		},
		OnHalt: func(ctx context.Context, ev *domain.HaltEvent) {
			fmt.Println(tui.HaltLine(ev))
		},
	}
}

func printResult(res *domain.Result) {
	verdict := "not accepted"
	if res.Accepted {
		verdict = "accepted"
	}
	printSystemMessage("%s (%s) in %d steps, final state '%s'", verdict, res.Outcome, res.Steps, res.FinalState)
	fmt.Printf("tape: %s\n", res.Tape)
}
