package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/spool/internal/logging"
	"github.com/aretw0/spool/pkg/adapters/mcp"
	"github.com/aretw0/spool/pkg/machines"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the registered machines as an MCP Server over stdio.
This allows AI agents (like Claude Desktop) to run machines as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		levelStr, _ := cmd.Flags().GetString("log-level")

		level := logging.ParseLevel(levelStr)
		if debug {
			level = slog.LevelDebug
		}
		// Logs go to Stderr so they don't corrupt JSON-RPC on Stdout.
		logger := logging.New(level)
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(machines.Builtin(), logger)

		slog.Info("Starting Spool MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
