package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/jsonml/internal/validator"
	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check a markup document without rendering it",
	Long: `Walks a markup document and reports undefined tokens, unknown special tags
and malformed nodes. Nothing is rendered and deferred values are not called.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, _, err := loadTable(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading prefs: %v\n", err)
			os.Exit(1)
		}

		var (
			data   []byte
			format = formatJSON
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			format = inputFormatFor(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading markup: %v\n", err)
			os.Exit(1)
		}

		decode := codec.DecodeJSON
		if format == formatYAML {
			decode = codec.DecodeYAML
		}
		markup, err := decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := validator.ValidateMarkup(markup, table); err != nil {
			fmt.Fprintf(os.Stderr, "Lint failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Markup is valid")
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
