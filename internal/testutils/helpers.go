package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to name inside a fresh temporary directory and
// returns the absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}

// MustDecode parses a JSON markup document, failing the test on error.
func MustDecode(t *testing.T, doc string) any {
	t.Helper()

	markup, err := codec.DecodeJSON([]byte(doc))
	require.NoError(t, err, "Failed to decode markup")
	return markup
}
