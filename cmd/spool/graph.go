package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/presentation/graph"
	"github.com/aretw0/spool/pkg/machines"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export a machine's transition diagram",
	Long:  `Outputs a Mermaid state diagram of the machine's transition table, with accepting and rejecting states marked.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := machines.Builtin().Get(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(m))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
