package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/jsonml/internal/logging"
	"github.com/aretw0/jsonml/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the render engine as an MCP Server over stdio.
AI agents can call the render_markup tool and read the jsonml://tokens resource.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		// Logs go to stderr so they don't corrupt JSON-RPC on stdout.
		logger := logging.New(logging.Options{Level: level, Format: logging.FormatJSON})
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		engine, table, err := newEngine(cmd)
		if err != nil {
			log.Fatalf("Error initializing jsonml: %v", err)
		}

		srv := mcp.NewServer(engine, table.Names())

		slog.Info("Starting jsonml MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
