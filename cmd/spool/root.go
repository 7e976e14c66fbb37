package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "spool",
	Short: "Spool is a deterministic Turing machine engine",
	Long:  `Spool runs single-tape Turing machines: load an input, step through transitions and read off the verdict, step count and final tape.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}
