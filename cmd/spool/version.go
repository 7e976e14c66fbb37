package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of spool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spool version %s\n", strings.TrimSpace(spool.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
