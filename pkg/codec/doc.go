/*
Package codec moves markup and rendered nodes across process boundaries.

Markup documents are plain JSON or YAML. Because neither format has symbols,
strings starting with a colon are read as tokens (":header-style" becomes
domain.Token("header-style")); a doubled colon escapes a literal string
("::x" becomes ":x"). Rendered nodes are encoded back into the same shape
hosts expect: templates and groups as arrays, surrogates as objects.
*/
package codec
