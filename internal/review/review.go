// Package review applies manually corrected credits to an enriched song
// document. Reviews are produced by a human pass over the songs the
// enrichment parser flagged.
package review

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/logging"
)

// Review carries the corrected credit lists for one song. Empty lists leave
// the corresponding field cleared rather than untouched.
type Review struct {
	Composers   []string `json:"composers,omitempty"`
	Lyricists   []string `json:"lyricists,omitempty"`
	Translators []string `json:"translators,omitempty"`
}

// Reviews maps decimal song ids to their corrections.
type Reviews map[string]Review

// LoadReviews reads a reviews file. A missing file is an error; the caller
// decides whether that is fatal.
func LoadReviews(path string) (Reviews, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reviews %s: %w", path, err)
	}
	var reviews Reviews
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("parsing reviews %s: %w", path, err)
	}
	return reviews, nil
}

// Result summarizes an Apply pass.
type Result struct {
	TotalSongs int `json:"total_songs"`
	Applied    int `json:"applied"`
	// Remaining counts songs still flagged needsManualReview afterwards.
	Remaining int `json:"remaining"`
}

// Apply replaces the credit fields of every reviewed song and clears its
// needsManualReview flag and unparsed string. The parsingUncertain flag is
// left as is: a review fixes the credits, the uncertainty marker stays until
// the source file header itself is fixed. Songs without a review are
// untouched.
func Apply(doc *library.Document, reviews Reviews) Result {
	res := Result{TotalSongs: len(doc.Songs)}
	for _, s := range doc.Songs {
		review, ok := reviews[fmt.Sprintf("%d", s.ID)]
		if !ok {
			continue
		}
		s.Composers = review.Composers
		s.Lyricists = review.Lyricists
		s.Translators = review.Translators
		s.NeedsManualReview = false
		s.UnparsedString = ""
		res.Applied++
	}
	for _, s := range doc.Songs {
		if s.NeedsManualReview {
			res.Remaining++
		}
	}
	logging.Info().
		Int("applied", res.Applied).
		Int("remaining", res.Remaining).
		Msg("manual reviews applied")
	return res
}
