/*
Package dsl provides a fluent Go API for writing markup without spelling out
nested []any literals by hand.

It produces ordinary markup values, so anything built here can be passed to
Engine.Render, encoded with pkg/codec, or registered as a token value.

Example usage:

	b := dsl.New()
	b.Define("item-tag", dsl.Tag("li").Style(dsl.T("item-style")).Head())

	page := dsl.Tag("ul").Child(
		dsl.Using(dsl.T("item-tag")).Text("first"),
		dsl.Surrogate(items).Header(dsl.Tag("b").Text("more")),
		dsl.Reference(user, nil),
	)

	eng := jsonml.New(jsonml.WithTokens(b.Tokens()))
	node, err := eng.Render(ctx, page.Markup())
*/
package dsl
