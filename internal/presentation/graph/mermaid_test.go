package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/jsonml/internal/presentation/graph"
	"github.com/aretw0/jsonml/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		node     domain.Node
		contains []string
	}{
		{
			name: "Template Tree",
			node: domain.Template{"div", domain.Attributes{}, domain.Template{"span", domain.Attributes{}, "hi"}},
			contains: []string{
				"graph TD",
				"n0[\"div\"]",
				"n1[\"span\"]",
				"n2(\"hi\")",
				"n0 --> n1",
				"n1 --> n2",
			},
		},
		{
			name: "Surrogate Shape",
			node: &domain.Surrogate{Target: "list", Header: domain.Template{"b", domain.Attributes{}}},
			contains: []string{
				"n0[[\"surrogate list\"]]",
				"n0 -- \"header\" --> n1",
			},
		},
		{
			name: "Reference Shape",
			node: domain.Group{"object", map[string]any{"object": 7, "config": domain.State{}}},
			contains: []string{
				"n0[/\"7\"/]",
			},
		},
		{
			name: "Label Escaping",
			node: domain.Template{"span", domain.Attributes{"style": "color: red"}, "say \"hi\""},
			contains: []string{
				"n1(\"say 'hi'\")",
				"class n0 styled;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.node)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() missing %q\nGot:\n%s", want, got)
				}
			}
		})
	}
}
