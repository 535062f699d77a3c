package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jsonml",
	Run: func(cmd *cobra.Command, args []string) {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(os.Stdout)
		}
		fmt.Printf("jsonml version %s\n", strings.TrimSpace(jsonml.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
