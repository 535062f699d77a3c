package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/muesli/termenv"
)

// Ellipsis trails every collapsed surrogate.
const Ellipsis = "…"

var blockTags = map[string]bool{
	"div": true, "p": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "pre": true,
}

// TextStyle is the subset of a template style a terminal can show.
type TextStyle struct {
	Color  string
	Bold   bool
	Italic bool
}

func (s TextStyle) merge(o TextStyle) TextStyle {
	if o.Color != "" {
		s.Color = o.Color
	}
	s.Bold = s.Bold || o.Bold
	s.Italic = s.Italic || o.Italic
	return s
}

// Painter paints rendered nodes as terminal text.
type Painter struct {
	profile termenv.Profile
}

// NewPainter creates a painter for profile. Use termenv.ColorProfile() for
// the current terminal and termenv.Ascii for plain text.
func NewPainter(profile termenv.Profile) *Painter {
	return &Painter{profile: profile}
}

// Paint returns the terminal text for a rendered node.
func (p *Painter) Paint(node domain.Node) string {
	var sb strings.Builder
	p.paint(&sb, node, TextStyle{})
	return strings.TrimRight(sb.String(), "\n")
}

func (p *Painter) paint(sb *strings.Builder, v any, style TextStyle) {
	switch n := v.(type) {
	case nil:
		return
	case domain.Template:
		p.paintTemplate(sb, n, style)
	case domain.Group:
		if domain.IsReference(n) {
			p.text(sb, referenceText(n), style)
			return
		}
		for _, item := range n {
			p.paint(sb, item, style)
		}
	case *domain.Surrogate:
		if n.Header != nil {
			p.paint(sb, n.Header, style)
		} else {
			p.text(sb, fmt.Sprintf("%v", n.Target), style)
		}
		p.text(sb, Ellipsis, style)
	case []any:
		for _, item := range n {
			p.paint(sb, item, style)
		}
	default:
		p.text(sb, fmt.Sprint(n), style)
	}
}

func (p *Painter) paintTemplate(sb *strings.Builder, t domain.Template, style TextStyle) {
	style = style.merge(ParseStyle(t.Attrs()["style"]))
	for _, child := range t.Children() {
		p.paint(sb, child, style)
	}
	if tag, ok := t.Tag().(string); ok && blockTags[tag] {
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}
}

func (p *Painter) text(sb *strings.Builder, s string, style TextStyle) {
	if s == "" {
		return
	}
	if p.profile == termenv.Ascii {
		sb.WriteString(s)
		return
	}

	out := termenv.String(s)
	if style.Color != "" {
		out = out.Foreground(p.profile.Color(style.Color))
	}
	if style.Bold {
		out = out.Bold()
	}
	if style.Italic {
		out = out.Italic()
	}
	sb.WriteString(out.String())
}

func referenceText(ref domain.Group) string {
	if len(ref) < 2 {
		return ""
	}
	config, ok := ref[1].(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", ref[1])
	}
	return fmt.Sprintf("%v", config["object"])
}

// ParseStyle reads a template style. Both CSS strings such as
// "color: #808080; font-weight: bold" and maps keyed by CSS or camelCase
// property names are understood; anything else yields the zero style.
func ParseStyle(v any) TextStyle {
	var style TextStyle
	switch s := v.(type) {
	case string:
		for _, decl := range strings.Split(s, ";") {
			prop, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			style.apply(strings.TrimSpace(prop), strings.TrimSpace(val))
		}
	case map[string]any:
		for prop, val := range s {
			style.apply(prop, fmt.Sprint(val))
		}
	case domain.Attributes:
		return ParseStyle(map[string]any(s))
	}
	return style
}

func (s *TextStyle) apply(prop, val string) {
	switch strings.ToLower(prop) {
	case "color":
		s.Color = val
	case "font-weight", "fontweight":
		s.Bold = val == "bold" || val == "bolder" || val == "700" || val == "800" || val == "900"
	case "font-style", "fontstyle":
		s.Italic = val == "italic" || val == "oblique"
	}
}
