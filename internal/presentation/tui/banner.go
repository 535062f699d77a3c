package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"       _                       _ ", "#38bdf8"},
	{"      (_)___  ___  _ __  _ __ | |", "#22d3ee"},
	{"      | / __|/ _ \\| '_ \\| '_ \\| |", "#2dd4bf"},
	{"      | \\__ \\ (_) | | | | | | | |", "#34d399"},
	{"     _/ |___/\\___/|_| |_|_| |_|_|", "#4ade80"},
	{"    |__/", "#a3e635"},
}

// PrintBanner writes the jsonml banner to w using the terminal's color profile.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
