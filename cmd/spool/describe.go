package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/presentation/tui"
	"github.com/aretw0/spool/pkg/machines"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Show a machine's description",
	Long:  `Renders the machine's markdown description in the terminal, followed by its alphabets and halting states.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := machines.Builtin().Get(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewMarkdownRenderer()
		out, err := render(m.Description)
		if err != nil {
			// Markdown rendering is cosmetic; fall back to the raw text.
			out = m.Description + "\n"
		}
		fmt.Print(out)

		fmt.Printf("blank symbol:    %q\n", m.BlankSymbol())
		fmt.Printf("initial state:   %s\n", m.InitialState)
		fmt.Printf("accepting:       %v\n", m.AcceptStates)
		fmt.Printf("rejecting:       %v\n", m.RejectStates)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
