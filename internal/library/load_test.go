package library

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"version": "v1",
	"title": "Sample",
	"songs": [
		{"id": 1, "name": "A", "singer": "X", "composers": ["Y"], "lyricists": ["Z"]},
		{"id": 2, "name": "B", "singer": "X", "composers": ["Y"], "lyricists": ["Z"]}
	],
	"categories": [{"id": "heb", "name": "עברית"}]
}`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDocument_File(t *testing.T) {
	doc, err := LoadDocument(writeTemp(t, sampleJSON))
	require.NoError(t, err)
	require.Equal(t, "v1", doc.Version)
	require.Len(t, doc.Songs, 2)
	require.Len(t, doc.Categories, 1)
}

func TestLoadDocument_MissingFieldsDefaultEmpty(t *testing.T) {
	doc, err := LoadDocument(writeTemp(t, `{"version": "v1"}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Songs)
	require.Empty(t, doc.Songs)
	require.NotNil(t, doc.Categories)
	require.Empty(t, doc.Categories)
}

func TestLoadDocument_FileMissing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLoadDocument_Malformed(t *testing.T) {
	_, err := LoadDocument(writeTemp(t, "{not json"))
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestLoadDocument_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	doc, err := LoadDocument(srv.URL)
	require.NoError(t, err)
	require.Len(t, doc.Songs, 2)
}

func TestLoadDocument_URLNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := LoadDocument(srv.URL)
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestOpen_BuildsIndexes(t *testing.T) {
	lib, err := Open(writeTemp(t, sampleJSON))
	require.NoError(t, err)
	require.Len(t, lib.SongsByArtist("x"), 2)

	collabs := lib.AllCollaborations(0)
	require.Len(t, collabs, 1)
	require.Equal(t, 2, collabs[0].SongCount)
}

func TestStore_Reload(t *testing.T) {
	path := writeTemp(t, sampleJSON)
	store, err := OpenStore(path)
	require.NoError(t, err)

	before := store.Library()
	require.Len(t, before.AllSongs(0, 0), 2)

	require.NoError(t, os.WriteFile(path, []byte(`{"songs": [{"id": 9, "name": "New", "singer": "N"}]}`), 0644))
	require.NoError(t, store.Reload())

	after := store.Library()
	require.NotSame(t, before, after)
	require.Len(t, after.AllSongs(0, 0), 1)
	// The old snapshot is untouched.
	require.Len(t, before.AllSongs(0, 0), 2)
}

func TestStore_ReloadFailureKeepsSnapshot(t *testing.T) {
	path := writeTemp(t, sampleJSON)
	store, err := OpenStore(path)
	require.NoError(t, err)
	before := store.Library()

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	require.ErrorIs(t, store.Reload(), ErrMalformedDocument)
	require.Same(t, before, store.Library())
}

func TestSaveDocument_RoundTrip(t *testing.T) {
	doc, err := LoadDocument(writeTemp(t, sampleJSON))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, SaveDocument(path, doc))

	again, err := LoadDocument(path)
	require.NoError(t, err)
	require.Equal(t, doc.Version, again.Version)
	require.Len(t, again.Songs, len(doc.Songs))
	require.Equal(t, doc.Songs[0].Name, again.Songs[0].Name)
}

func TestIsURL(t *testing.T) {
	require.True(t, IsURL("https://example.com/songs.json"))
	require.True(t, IsURL("http://example.com/songs.json"))
	require.False(t, IsURL("/tmp/songs.json"))
	require.False(t, IsURL("songs.json"))
}
