// Package fixtures provides a sample song document for tests.
package fixtures

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/KidCrippler/music-library-mcp/internal/library"
)

//go:embed songs.json
var songsJSON []byte

// WriteTestDocument writes the sample document to a temp file and returns its
// path. The file lives for the duration of the test.
func WriteTestDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	if err := os.WriteFile(path, songsJSON, 0644); err != nil {
		t.Fatalf("write test document: %v", err)
	}
	return path
}

// OpenTestLibrary builds a Library from the sample document.
func OpenTestLibrary(t *testing.T) *library.Library {
	t.Helper()
	lib, err := library.Open(WriteTestDocument(t))
	if err != nil {
		t.Fatalf("open test library: %v", err)
	}
	return lib
}
