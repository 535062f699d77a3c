package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPainter_Ascii(t *testing.T) {
	p := NewPainter(termenv.Ascii)

	tests := []struct {
		name string
		node domain.Node
		want string
	}{
		{
			name: "Nested Templates",
			node: domain.Template{"div", domain.Attributes{},
				domain.Template{"b", domain.Attributes{"style": "font-weight: bold"}, "Name: "},
				"value",
			},
			want: "Name: value",
		},
		{
			name: "Surrogate With Header",
			node: &domain.Surrogate{Target: []int{1, 2}, Header: domain.Template{"span", domain.Attributes{}, "list"}},
			want: "list…",
		},
		{
			name: "Surrogate Without Header",
			node: &domain.Surrogate{Target: 42},
			want: "42…",
		},
		{
			name: "Reference",
			node: domain.Group{"object", map[string]any{"object": []int{1, 2}, "config": domain.State{}}},
			want: "[1 2]",
		},
		{
			name: "Block Children",
			node: domain.Template{"div", domain.Attributes{},
				domain.Template{"p", domain.Attributes{}, "one"},
				domain.Template{"p", domain.Attributes{}, "two"},
			},
			want: "one\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Paint(tt.node))
		})
	}
}

func TestPainter_Colors(t *testing.T) {
	p := NewPainter(termenv.TrueColor)

	out := p.Paint(domain.Template{"span", domain.Attributes{"style": map[string]any{"fontWeight": "bold", "color": "#ff0000"}}, "hot"})
	assert.Contains(t, out, "hot")
	assert.Contains(t, out, "\x1b[", "expected ANSI sequences")
	assert.Contains(t, out, ";1m", "expected bold attribute after the color")
}

func TestParseStyle(t *testing.T) {
	assert.Equal(t, TextStyle{Color: "#808080"}, ParseStyle("color: #808080"))
	assert.Equal(t, TextStyle{Bold: true, Italic: true}, ParseStyle("font-weight: bold; font-style: italic"))
	assert.Equal(t, TextStyle{Bold: true}, ParseStyle(map[string]any{"fontWeight": "bold"}))
	assert.Equal(t, TextStyle{}, ParseStyle(42))
}

func TestErrorReport(t *testing.T) {
	err := &domain.MarkupError{
		Reason: "no matching special tag name: 'bogus'",
		Path:   "[<render-markup> bogus]",
		Stack:  "([]interface {}) (len=1) {\n  (string) (len=5) \"bogus\"\n}",
	}

	report := ErrorReport(err)
	assert.True(t, strings.HasPrefix(report, "# Render failed"))
	assert.Contains(t, report, "## Render path")
	assert.Contains(t, report, "## Render stack")

	plain := ErrorReport(errors.New("boom"))
	assert.Contains(t, plain, "boom")
	assert.NotContains(t, plain, "Render path")

	rendered, rerr := RenderErrorReport(err, "notty")
	require.NoError(t, rerr)
	assert.Contains(t, rendered, "bogus")
}
