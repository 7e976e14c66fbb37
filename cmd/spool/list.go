package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/pkg/machines"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered machines",
	Run: func(cmd *cobra.Command, args []string) {
		reg := machines.Builtin()
		for _, name := range reg.Names() {
			m, err := reg.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%-20s %d states, %d transitions\n", name, len(m.States), len(m.Transitions))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
