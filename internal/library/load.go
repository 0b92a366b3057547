package library

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Load failures. Both are fatal to construction: no partial Library is ever
// returned.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedDocument = errors.New("malformed document")
)

// fetchTimeout bounds the one synchronous network fetch at load time.
const fetchTimeout = 30 * time.Second

// IsURL reports whether source is a remote-fetch reference rather than a
// local file path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadDocument reads and parses the source document from a local path or an
// http(s) URL. Missing songs/categories fields default to empty lists.
func LoadDocument(source string) (*Document, error) {
	raw, err := readSource(source)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedDocument, source, err)
	}
	if doc.Songs == nil {
		doc.Songs = []*Song{}
	}
	if doc.Categories == nil {
		doc.Categories = []*Category{}
	}
	return &doc, nil
}

func readSource(source string) ([]byte, error) {
	if !IsURL(source) {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrSourceUnavailable, source, err)
		}
		return raw, nil
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(source)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrSourceUnavailable, source, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetching %s: status %d", ErrSourceUnavailable, source, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrSourceUnavailable, source, err)
	}
	return raw, nil
}

// SaveDocument writes doc as tab-indented JSON, the layout the offline
// pipelines produce.
func SaveDocument(path string, doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Open loads the source document and builds a fully indexed Library.
func Open(source string) (*Library, error) {
	doc, err := LoadDocument(source)
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// Store publishes a Library snapshot to concurrent readers. Reload builds a
// whole new Library and swaps it in one atomic step; readers see either the
// old snapshot or the new one, never a half-built index.
type Store struct {
	source string
	cur    atomic.Pointer[Library]
}

// OpenStore opens source and wraps the resulting Library in a Store.
func OpenStore(source string) (*Store, error) {
	lib, err := Open(source)
	if err != nil {
		return nil, err
	}
	s := &Store{source: source}
	s.cur.Store(lib)
	return s, nil
}

// Library returns the current snapshot.
func (s *Store) Library() *Library {
	return s.cur.Load()
}

// Source returns the source reference the store reloads from.
func (s *Store) Source() string {
	return s.source
}

// Reload rebuilds from the source and swaps the snapshot. On failure the old
// snapshot stays current.
func (s *Store) Reload() error {
	lib, err := Open(s.source)
	if err != nil {
		return err
	}
	s.cur.Store(lib)
	return nil
}
