package runtime

import (
	"testing"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeGroup(t *testing.T) {
	e := newTestEngine(map[domain.Token]any{"answer": 42})

	t.Run("Splices One Level", func(t *testing.T) {
		group := e.MakeGroup([]any{1, []any{2, 3}, nil, 4})
		assert.Equal(t, domain.Group{1, 2, 3, 4}, group)
		assert.True(t, domain.IsGroup(group))
		assert.False(t, domain.IsTemplate(group))
	})

	t.Run("Nested Sequences Stay Whole", func(t *testing.T) {
		group := e.MakeGroup([]any{[]any{1, []any{2}}})
		assert.Equal(t, domain.Group{1, []any{2}}, group)
	})

	t.Run("Resolves Tokens", func(t *testing.T) {
		group := e.MakeGroup([]any{domain.Token("answer")})
		assert.Equal(t, domain.Group{42}, group)
	})

	t.Run("Empty", func(t *testing.T) {
		group := e.MakeGroup(nil)
		assert.True(t, domain.IsGroup(group))
		assert.Empty(t, group)
	})
}

func TestMakeTemplate(t *testing.T) {
	e := newTestEngine(map[domain.Token]any{
		"bold-style": map[string]any{"fontWeight": "bold"},
		"nothing":    nil,
	})

	t.Run("Empty Style", func(t *testing.T) {
		for _, style := range []any{nil, "", map[string]any{}, []any{}} {
			tmpl := e.MakeTemplate("span", style, nil)
			assert.Equal(t, domain.Template{"span", domain.Attributes{}}, tmpl)
		}
	})

	t.Run("Token Style", func(t *testing.T) {
		tmpl := e.MakeTemplate("span", domain.Token("bold-style"), []any{"hi"})
		assert.Equal(t, domain.Template{
			"span",
			domain.Attributes{"style": map[string]any{"fontWeight": "bold"}},
			"hi",
		}, tmpl)
		assert.Equal(t, "span", tmpl.Tag())
	})

	t.Run("Children", func(t *testing.T) {
		tmpl := e.MakeTemplate("div", nil, []any{"a", nil, domain.Token("nothing"), []any{"b", nil, "c"}, false})
		assert.Equal(t, domain.Template{"div", domain.Attributes{}, "a", "b", "c", false}, tmpl)
	})
}

func TestConcatTemplates(t *testing.T) {
	e := newTestEngine(map[domain.Token]any{"more": []any{"x", "y"}})
	base := domain.Template{"span", domain.Attributes{}, "a"}

	out := e.ConcatTemplates(base, []any{[]any{"b"}, domain.Token("more"), nil, "z"})
	assert.Equal(t, domain.Template{"span", domain.Attributes{}, "a", "b", "x", "y", "z"}, out)
	assert.Len(t, base, 3, "inputs are not mutated")

	extended := e.ExtendTemplate(base, []any{domain.Group{1, 2}})
	assert.Equal(t, domain.Template{"span", domain.Attributes{}, "a", 1, 2}, extended)
}

func TestMakeSurrogate(t *testing.T) {
	e := newTestEngine(nil)

	s := e.MakeSurrogate("target", "header", nil, nil)
	assert.True(t, domain.IsSurrogate(s))
	assert.Equal(t, 0, s.StartIndex)

	idx := 3
	s = e.MakeSurrogate("target", nil, "body", &idx)
	start, err := domain.SurrogateStartIndex(s)
	require.NoError(t, err)
	assert.Equal(t, 3, start)

	body, err := domain.SurrogateBody(s)
	require.NoError(t, err)
	assert.Equal(t, "body", body)
}

func TestMakeReference(t *testing.T) {
	e := newTestEngine(nil)
	nilTemplate := domain.Template{"span", domain.Attributes{"style": "color: #808080"}, "nil"}

	t.Run("Nil Target", func(t *testing.T) {
		called := false
		override := func(s domain.State) domain.State {
			called = true
			return s
		}
		assert.Equal(t, nilTemplate, e.MakeReference(nil, override))
		assert.Equal(t, nilTemplate, e.MakeReference((*domain.Surrogate)(nil), nil))
		assert.Equal(t, nilTemplate, e.MakeReference(map[string]any(nil), nil))
		assert.False(t, called, "override is ignored for nil targets")
	})

	t.Run("Object Target", func(t *testing.T) {
		node := e.MakeReference("obj", nil)
		require.True(t, domain.IsReference(node))
		assert.Equal(t, domain.KindReference, node.Kind())
		assert.Equal(t, domain.Group{"object", map[string]any{
			"object": "obj",
			"config": domain.State{DepthBudget: 7},
		}}, node)
	})

	t.Run("Override", func(t *testing.T) {
		node := e.MakeReference("obj", func(s domain.State) domain.State {
			s.History = append(s.History, "obj")
			return s
		})
		config := node.(domain.Group)[1].(map[string]any)["config"].(domain.State)
		assert.Equal(t, []any{"obj"}, config.History)
	})

	t.Run("Bad Override", func(t *testing.T) {
		_, err := e.makeReferenceFromArgs("obj", []any{42})
		require.Error(t, err)

		var violation *domain.InvariantViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, 42, violation.Value)
	})
}

func TestResolve(t *testing.T) {
	e := newTestEngine(map[domain.Token]any{
		"alias":  domain.Token("target"),
		"target": "value",
	})

	assert.Equal(t, "value", e.Resolve("alias"))
	assert.Equal(t, "span", e.Resolve(domain.TokenNilTag))
	assert.Nil(t, e.Resolve("missing"))
}
