package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/internal/presentation/graph"
	"github.com/aretw0/jsonml/internal/presentation/tui"
	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Output formats accepted by --format.
const (
	formatAuto    = "auto"
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatTTY     = "tty"
	formatMermaid = "mermaid"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a markup document",
	Long: `Renders a markup document read from file, or from stdin when no file is given.
Files ending in .yaml or .yml are read as YAML, everything else as JSON.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		inputFormat, _ := cmd.Flags().GetString("input-format")

		engine, _, err := newEngine(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing jsonml: %v\n", err)
			os.Exit(1)
		}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error opening markup: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			in = f
			if inputFormat == "" {
				inputFormat = inputFormatFor(args[0])
			}
		}

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		if format == formatAuto {
			format = formatJSON
			if isTTY {
				format = formatTTY
			}
		}

		opts := renderOptions{Format: format, InputFormat: inputFormat, Profile: termenv.Ascii}
		if isTTY {
			opts.Profile = termenv.ColorProfile()
		}

		if err := runRender(cmd.Context(), engine, opts, in, os.Stdout); err != nil {
			printRenderError(err, isTTY && term.IsTerminal(int(os.Stderr.Fd())))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", formatAuto, "Output format: auto, json, yaml, tty or mermaid")
	renderCmd.Flags().String("input-format", "", "Input format: json or yaml (default from file extension, json for stdin)")
}

type renderOptions struct {
	Format      string
	InputFormat string
	Profile     termenv.Profile
}

func inputFormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

// runRender decodes one markup document from in, renders it and writes the
// node to out in opts.Format.
func runRender(ctx context.Context, engine *jsonml.Engine, opts renderOptions, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read markup: %w", err)
	}

	var node domain.Node
	if opts.InputFormat == formatYAML {
		node, err = engine.RenderYAML(ctx, data)
	} else {
		node, err = engine.RenderJSON(ctx, data)
	}
	if err != nil {
		return err
	}

	switch opts.Format {
	case formatJSON:
		b, err := codec.EncodeIndent(node)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case formatYAML:
		b, err := codec.EncodeYAML(node)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	case formatTTY:
		_, err := fmt.Fprintln(out, tui.NewPainter(opts.Profile).Paint(node))
		return err
	case formatMermaid:
		_, err := fmt.Fprint(out, graph.GenerateMermaid(node))
		return err
	}
	return fmt.Errorf("unknown output format: %s", opts.Format)
}

func printRenderError(err error, pretty bool) {
	if pretty {
		if report, rerr := tui.RenderErrorReport(err, ""); rerr == nil {
			fmt.Fprint(os.Stderr, report)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
