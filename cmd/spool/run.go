package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/cli"
	"github.com/aretw0/spool/pkg/machines"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine> [input]",
	Short: "Run a machine on an input string",
	Long:  `Runs a registered machine on the given input and prints the verdict, step count and final tape. An omitted input runs the machine on the empty string.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		input := ""
		if len(args) > 1 {
			input = args[1]
		}

		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		trace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			Machine:  args[0],
			Input:    input,
			MaxSteps: maxSteps,
			Trace:    trace,
			JSON:     jsonMode,
			Debug:    debug,
			Quiet:    quiet,
		}

		if err := cli.Execute(cmd.Context(), machines.Builtin(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("max-steps", "m", 0, "Step budget for the run (0 uses the default of 10000)")
	runCmd.Flags().BoolP("trace", "t", false, "Print every machine configuration as the run unfolds")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress the human-readable summary")
}
