// Package library is the indexing and query engine for the song catalog.
// A Library is built once from a source document and is immutable afterwards;
// every exposed operation is a pure read. Use Store for atomic reloads.
package library

import "strings"

// Key canonicalizes a display name into a lookup key. Two names refer to the
// same person iff they are equal after this transform.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Song is one song record as it appears in the source document. Fields past
// the credit lists are opaque payload: the engine carries them through
// untouched.
type Song struct {
	ID                int        `json:"id,omitempty"`
	Name              string     `json:"name,omitempty"`
	Singer            string     `json:"singer,omitempty"`
	Composers         []string   `json:"composers,omitempty"`
	Lyricists         []string   `json:"lyricists,omitempty"`
	Translators       []string   `json:"translators,omitempty"`
	NeedsManualReview bool       `json:"needsManualReview,omitempty"`
	ParsingUncertain  bool       `json:"parsingUncertain,omitempty"`
	UnparsedString    string     `json:"unparsedString,omitempty"`
	Playback          *Playback  `json:"playback,omitempty"`
	IsPrivate         *bool      `json:"isPrivate,omitempty"`
	CategoryIDs       []string   `json:"categoryIds,omitempty"`
	Lyrics            *LyricsRef `json:"lyrics,omitempty"`

	// Internal bookkeeping timestamps (entry creation/modification in the
	// source system, milliseconds). Not song release dates.
	DateCreated  int64 `json:"dateCreated,omitempty"`
	DateModified int64 `json:"dateModified,omitempty"`
}

// Playback is the playback reference payload.
type Playback struct {
	YouTubeVideoID string `json:"youTubeVideoId,omitempty"`
}

// LyricsRef points at the lyrics markup file for a song.
type LyricsRef struct {
	MarkupURL     string `json:"markupUrl,omitempty"`
	MarkupVersion int    `json:"markupVersion,omitempty"`
}

// Category is a song category. Songs reference categories by id; a dangling
// reference is just a key with no resolvable metadata.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the top-level source document.
type Document struct {
	Version    string      `json:"version,omitempty"`
	Title      string      `json:"title,omitempty"`
	NewSongIDs []int       `json:"newSongIds,omitempty"`
	Songs      []*Song     `json:"songs"`
	Categories []*Category `json:"categories"`
}
