package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes caps request bodies unless WithMaxBodyBytes says otherwise.
const DefaultMaxBodyBytes int64 = 1 << 20

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Markup json.RawMessage `json:"markup"`
}

// RenderResponse is returned by POST /render on success.
type RenderResponse struct {
	Kind domain.Kind `json:"kind"`
	Node any         `json:"node"`
}

// ErrorResponse carries a render failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a renderer over HTTP.
type Server struct {
	Engine  ports.Renderer
	Tables  ports.TableStore
	Logger  *slog.Logger
	Metrics http.Handler

	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64
}

// HandlerOption configures NewHandler.
type HandlerOption func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetricsHandler mounts h under GET /metrics.
func WithMetricsHandler(h http.Handler) HandlerOption {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(s *Server) {
		if n > 0 {
			s.MaxBodyBytes = n
		}
	}
}

// WithTableStore exposes store under /tables.
func WithTableStore(store ports.TableStore) HandlerOption {
	return func(s *Server) {
		s.Tables = store
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Renderer, opts ...HandlerOption) http.Handler {
	server := &Server{
		Engine:       engine,
		Logger:       slog.Default(),
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestSize(server.MaxBodyBytes))
	r.Post("/render", server.Render)
	r.Get("/tokens/{name}", server.GetToken)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.Tables != nil {
		r.Route("/tables", func(r chi.Router) {
			r.Get("/", server.ListTables)
			r.Get("/{name}", server.GetTable)
			r.Put("/{name}", server.PutTable)
			r.Delete("/{name}", server.DeleteTable)
		})
	}
	if server.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", server.Metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Render handles the POST /render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	var body RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBodyError(w, err)
		s.Logger.Warn("Render: Invalid request body", "error", err)
		return
	}
	if len(body.Markup) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing markup"})
		return
	}

	markup, err := codec.DecodeJSON(body.Markup)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		s.Logger.Warn("Render: Invalid markup document", "error", err)
		return
	}

	node, err := s.Engine.Render(r.Context(), markup)
	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		s.Logger.Warn("Render failed", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Kind: node.Kind(),
		Node: codec.ToPlain(node),
	})
}

// GetToken handles the GET /tokens/{name} request.
func (s *Server) GetToken(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	value := s.Engine.Resolve(domain.Token(name))
	if value == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown token: " + name})
		return
	}
	writeJSON(w, http.StatusOK, codec.ToPlain(value))
}

// ListTables handles the GET /tables request.
func (s *Server) ListTables(w http.ResponseWriter, r *http.Request) {
	names, err := s.Tables.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		s.Logger.Error("ListTables failed", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetTable handles the GET /tables/{name} request.
func (s *Server) GetTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tokens, err := s.Tables.Load(r.Context(), name)
	if errors.Is(err, domain.ErrTableNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown table: " + name})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		s.Logger.Error("GetTable failed", "error", err, "table", name)
		return
	}

	plain := make(map[string]any, len(tokens))
	for token, value := range tokens {
		plain[string(token)] = value
	}
	writeJSON(w, http.StatusOK, codec.ToPlain(plain))
}

// PutTable handles the PUT /tables/{name} request. The body is a JSON
// object of token name to value.
func (s *Server) PutTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBodyError(w, err)
		return
	}

	tokens := make(map[domain.Token]any, len(body))
	for token, raw := range body {
		value, err := codec.DecodeJSON(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		tokens[domain.Token(token)] = value
	}

	if err := s.Tables.Save(r.Context(), name, tokens); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		s.Logger.Error("PutTable failed", "error", err, "table", name)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTable handles the DELETE /tables/{name} request.
func (s *Server) DeleteTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.Tables.Delete(r.Context(), name); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		s.Logger.Error("DeleteTable failed", "error", err, "table", name)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "jsonml-http",
		"version": strings.TrimSpace(jsonml.Version),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMarkup), errors.Is(err, domain.ErrInvariant):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
		return
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
