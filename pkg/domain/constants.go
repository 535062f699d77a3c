package domain

// Built-in token names used by the engine itself.
const (
	// TokenNilTag names the tag of the template rendered for a nil reference.
	TokenNilTag Token = "nil-tag"
	// TokenNilStyle names the style of the nil reference template.
	TokenNilStyle Token = "nil-style"
	// TokenNilLabel names the text of the nil reference template.
	TokenNilLabel Token = "nil-label"
)

// FnMarker replaces functions in diagnostics and encoded output.
const FnMarker = "##fn##"
