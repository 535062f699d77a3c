package jsonml_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/internal/testutils"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RenderYAML(t *testing.T) {
	eng := jsonml.New(jsonml.WithTokens(map[domain.Token]any{
		"item-tag":   []any{"li", domain.Token("item-style")},
		"item-style": "color: #333",
	}))

	doc := []byte(`
- [ul, null]
- [":item-tag", one]
- [":item-tag", two]
`)
	node, err := eng.RenderYAML(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, domain.Template{
		"ul", domain.Attributes{},
		domain.Template{"li", domain.Attributes{"style": "color: #333"}, "one"},
		domain.Template{"li", domain.Attributes{"style": "color: #333"}, "two"},
	}, node)
}

func TestEngine_ReferenceSeesState(t *testing.T) {
	provider := state.NewProvider(domain.State{DepthBudget: 2})
	eng := jsonml.New(jsonml.WithStateProvider(provider))

	node, err := eng.RenderJSON(context.Background(), []byte(`["reference", {"id": 1}]`))
	require.NoError(t, err)
	config := node.(domain.Group)[1].(map[string]any)["config"].(domain.State)
	assert.Equal(t, 2, config.DepthBudget)

	provider.Set(domain.State{DepthBudget: 5})
	node, err = eng.RenderJSON(context.Background(), []byte(`["reference", {"id": 1}]`))
	require.NoError(t, err)
	config = node.(domain.Group)[1].(map[string]any)["config"].(domain.State)
	assert.Equal(t, 5, config.DepthBudget)
}

func TestEngine_Errors(t *testing.T) {
	eng := jsonml.New()

	_, err := eng.RenderJSON(context.Background(), []byte(`["bogus"]`))
	assert.ErrorIs(t, err, domain.ErrMarkup)

	_, err = eng.RenderJSON(context.Background(), []byte(`[`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMarkup)
}

func TestEngine_ConcurrentRenders(t *testing.T) {
	eng := jsonml.New()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := eng.Render(context.Background(), []any{[]any{"div", nil}, []any{[]any{"span", nil}, "ok"}})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := eng.Render(context.Background(), []any{[]any{"div", nil}, []any{"bogus"}})
			if err == nil {
				errs <- assert.AnError
				return
			}
			errs <- nil
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestNewFromFile(t *testing.T) {
	path := testutils.WriteFile(t, "prefs.yaml", `
tokens:
  nil-label: "(none)"
state:
  depth_budget: 3
`)

	eng, err := jsonml.NewFromFile(path)
	require.NoError(t, err)

	node, err := eng.Render(context.Background(), []any{"reference", nil})
	require.NoError(t, err)
	assert.Equal(t, domain.Template{"span", domain.Attributes{"style": "color: #808080"}, "(none)"}, node)

	node, err = eng.Render(context.Background(), []any{"reference", "x"})
	require.NoError(t, err)
	config := node.(domain.Group)[1].(map[string]any)["config"].(domain.State)
	assert.Equal(t, 3, config.DepthBudget)

	_, err = jsonml.NewFromFile(filepath.Join(filepath.Dir(path), "missing.yaml"))
	assert.Error(t, err)
}
