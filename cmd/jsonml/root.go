package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/internal/logging"
	"github.com/aretw0/jsonml/pkg/adapters/redis"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/prefs"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsonml",
	Short: "jsonml renders JSON markup into templates, surrogates and references",
	Long: `jsonml interprets markup written as nested arrays, resolving tokens from a
preferences file, and prints the rendered node as JSON, YAML or terminal text.`,
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
	rootCmd.PersistentFlags().String("prefs", "", "Preferences file (YAML or JSON) with tokens and state")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for shared token tables")
	rootCmd.PersistentFlags().String("table", "", "Name of a token table stored in Redis")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.ForVerbosity(verbose)
}

// loadTable builds the token table from --prefs and then --table.
func loadTable(cmd *cobra.Command) (*prefs.Table, domain.State, error) {
	prefsPath, _ := cmd.Flags().GetString("prefs")
	addr, _ := cmd.Flags().GetString("redis")
	tableName, _ := cmd.Flags().GetString("table")

	table := prefs.Defaults()
	st := domain.NewState()
	if prefsPath != "" {
		cfg, err := prefs.LoadFile(prefsPath)
		if err != nil {
			return nil, st, err
		}
		table, st = cfg.Tokens, cfg.State
	}

	if tableName != "" {
		if addr == "" {
			return nil, st, fmt.Errorf("--table requires --redis")
		}
		tokens, err := redis.New(addr).Load(cmd.Context(), tableName)
		if err != nil {
			return nil, st, fmt.Errorf("failed to load table %q: %w", tableName, err)
		}
		table.Merge(tokens)
	}
	return table, st, nil
}

// newEngine creates an engine over the table selected by the persistent flags.
func newEngine(cmd *cobra.Command, opts ...jsonml.Option) (*jsonml.Engine, *prefs.Table, error) {
	table, st, err := loadTable(cmd)
	if err != nil {
		return nil, nil, err
	}

	base := []jsonml.Option{
		jsonml.WithResolver(table),
		jsonml.WithState(st),
		jsonml.WithLogger(newLogger(cmd)),
	}
	return jsonml.New(append(base, opts...)...), table, nil
}
