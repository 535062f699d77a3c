package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/dsl"
	"github.com/aretw0/jsonml/pkg/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBuilder_Markup(t *testing.T) {
	m := dsl.Tag("div").Style("color: red").Text("a").Child(dsl.Tag("b").Text("c")).Markup()

	assert.Equal(t, []any{
		[]any{"div", "color: red"},
		"a",
		[]any{[]any{"b", nil}, "c"},
	}, m)
}

func TestSurrogateBuilder_Markup(t *testing.T) {
	assert.Equal(t, []any{"surrogate", 1}, dsl.Surrogate(1).Markup())
	assert.Equal(t, []any{"surrogate", 1, "h"}, dsl.Surrogate(1).Header("h").Markup())
	assert.Equal(t, []any{"surrogate", 1, nil, nil, 2}, dsl.Surrogate(1).StartIndex(2).Markup())
}

func TestBuilder_RendersThroughEngine(t *testing.T) {
	b := dsl.New().
		Define("item-tag", dsl.T("li-head")).
		Define("li-head", dsl.Tag("li").Style(dsl.T("item-style")).Head()).
		Define("item-style", "color: #333")
	require.NoError(t, b.Check(nil))

	page := dsl.Tag("ul").Child(
		dsl.Using(dsl.T("item-tag")).Text("first"),
		dsl.Surrogate([]int{1, 2, 3}).Header(dsl.Tag("b").Text("more")),
		dsl.Reference(nil, nil),
		dsl.Lazy(func() any { return dsl.Tag("i").Text("lazy").Markup() }),
	)

	eng := jsonml.New(jsonml.WithTokens(b.Tokens()))
	node, err := eng.Render(context.Background(), page.Markup())
	require.NoError(t, err)

	tmpl := node.(domain.Template)
	children := tmpl.Children()
	require.Len(t, children, 4)
	assert.Equal(t, domain.Template{"li", domain.Attributes{"style": "color: #333"}, "first"}, children[0])
	assert.True(t, domain.IsSurrogate(children[1]))
	assert.Equal(t, domain.Template{"span", domain.Attributes{"style": "color: #808080"}, "nil"}, children[2])
	// Deferred children are left for the host; only the top level is forced.
	_, isDeferred := children[3].(domain.Deferred)
	assert.True(t, isDeferred)
}

func TestBuilder_Check(t *testing.T) {
	b := dsl.New().Define("alias", dsl.T("missing"))
	assert.Error(t, b.Check(nil))
	assert.NoError(t, b.Check(map[domain.Token]any{"missing": "x"}))
	assert.NoError(t, dsl.New().Define("alias", dsl.T("nil-tag")).Check(prefs.Defaults().Snapshot()))
}
