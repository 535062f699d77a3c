/*
Package jsonml renders a small markup language, written as nested JSON-like
arrays, into a closed set of nodes a host can paint: templates, surrogates
and references.

# Concept

Markup is plain data. A node is a sequence whose head says what it is:

	[["span", ":bold-style"], "hello"]          ordinary tag: [[tag, style], ...children]
	["surrogate", target, header, body, start] collapsed placeholder for target
	["reference", target, override]             hand target to the host's formatter

Tokens such as ":bold-style" are looked up in a token table, so presentation
can change without touching the markup. Deferred values (func() any) are
called lazily. Rendering keeps going until a Template, Surrogate or
Reference comes out; any other result is a *domain.MarkupError that carries
the render path and stack of the failing subtree.

# Usage

	eng := jsonml.New(jsonml.WithTokens(map[domain.Token]any{
		"bold-style": map[string]any{"fontWeight": "bold"},
	}))

	node, err := eng.RenderJSON(ctx, []byte(`[["span", ":bold-style"], "hi"]`))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(node.Kind()) // template

# Adapters

The engine is embedded by the HTTP server (pkg/adapters/http), the MCP
server (pkg/adapters/mcp) and the jsonml CLI. Token tables can be shared
between processes through pkg/adapters/redis.
*/
package jsonml
