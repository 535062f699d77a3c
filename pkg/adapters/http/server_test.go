package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/jsonml"
	adapter "github.com/aretw0/jsonml/pkg/adapters/http"
	"github.com/aretw0/jsonml/pkg/adapters/memory"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	table := prefs.Defaults()
	table.Set("bold-style", map[string]any{"fontWeight": "bold"})
	return adapter.NewHandler(jsonml.New(jsonml.WithResolver(table)))
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRender_Template(t *testing.T) {
	w := post(t, newHandler(t), `{"markup": [["span", ":bold-style"], "hi"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp adapter.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindTemplate, resp.Kind)
	assert.Equal(t, []any{"span", map[string]any{"style": map[string]any{"fontWeight": "bold"}}, "hi"}, resp.Node)
}

func TestRender_Reference(t *testing.T) {
	w := post(t, newHandler(t), `{"markup": ["reference", {"id": 1}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp adapter.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.KindReference, resp.Kind)
}

func TestRender_MarkupError(t *testing.T) {
	w := post(t, newHandler(t), `{"markup": ["bogus"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp adapter.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no matching special tag name: 'bogus'")
	assert.Contains(t, resp.Error, "Render path:")
}

func TestRender_Literal(t *testing.T) {
	w := post(t, newHandler(t), `{"markup": 42}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRender_BadBody(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusBadRequest, post(t, h, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, `{}`).Code)
}

func TestGetToken(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/tokens/nil-tag", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"span"`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/tokens/missing", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jsonml_renders_total 0\n"))
	})
	h := adapter.NewHandler(jsonml.New(), adapter.WithMetricsHandler(metrics))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "jsonml_renders_total")
}

func TestTables(t *testing.T) {
	h := adapter.NewHandler(jsonml.New(), adapter.WithTableStore(memory.NewStore()))

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPut, "/tables/theme", `{"title-tag": ["h1", ":title-style"], "title-style": "color: #111"}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = do(http.MethodGet, "/tables/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title-tag": ["h1", ":title-style"], "title-style": "color: #111"}`, w.Body.String())

	w = do(http.MethodGet, "/tables/", "")
	assert.JSONEq(t, `["theme"]`, w.Body.String())

	assert.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/tables/theme", "").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/tables/theme", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPut, "/tables/theme", `[1]`).Code)
}

func TestRender_BodyTooLarge(t *testing.T) {
	h := adapter.NewHandler(jsonml.New(), adapter.WithMaxBodyBytes(64))

	big := `{"markup": [["span", null], "` + strings.Repeat("x", 256) + `"]}`
	w := post(t, h, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = post(t, h, `{"markup": [["span", null], "hi"]}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
