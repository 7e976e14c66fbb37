package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/cli"
	"github.com/aretw0/spool/pkg/machines"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Run a batch of inputs from a YAML manifest",
	Long: `Reads a manifest of runs and executes them in order. Each entry
selects a registered machine by name and sets the input and an optional
step budget:

  runs:
    - name: increment small
      machine: binary-increment
      input: "1011"
    - machine: palindrome
      input: "1001"
      max_steps: 500`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		manifest, err := cli.LoadManifest(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := cli.ExecuteBatch(cmd.Context(), machines.Builtin(), manifest, jsonMode, debug); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("json", false, "Print the results as a JSON array")
}
