/*
Package prefs provides the token table markup is written against.

A Table maps symbolic tokens to concrete values: tag/style pairs, CSS
strings, labels, or other tokens. Markup refers to these by name so the look
of a rendering can be changed without touching the code that produces it.

Tables can be built in code, loaded from YAML/JSON files or read from a
ports.TableStore.

	tokens:
	  header-tag: [span, ":header-style"]
	  header-style: "color: #444"
	state:
	  depth_budget: 3
*/
package prefs
