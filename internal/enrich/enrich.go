package enrich

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/logging"
)

// Fetcher retrieves the text of a lyric markup file by URL.
type Fetcher func(url string) (string, error)

// HTTPFetcher fetches markup over HTTP. A nil client uses http.DefaultClient.
func HTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return func(url string) (string, error) {
		resp, err := client.Get(url)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
}

// Options tunes a run.
type Options struct {
	// Workers bounds concurrent fetches. Values below 1 mean 1.
	Workers int
	// Version stamps the document when non-empty.
	Version string
}

// RunStats summarizes one enrichment run.
type RunStats struct {
	TotalSongs         int `json:"total_songs"`
	SuccessfullyParsed int `json:"successfully_parsed"`
	WithTranslators    int `json:"with_translators"`
	NeedsManualReview  int `json:"needs_manual_review"`
	ParsingUncertain   int `json:"parsing_uncertain"`
	ImageFilesSkipped  int `json:"image_files_skipped"`
	NoLyricsURL        int `json:"no_lyrics_url"`
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

func isImageURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// fetchResult carries one song's markup back to the apply pass. ok
// distinguishes "fetched" from "never attempted".
type fetchResult struct {
	content string
	err     error
	ok      bool
}

// Run enriches doc in place: each song's lyric markup is fetched (bounded
// worker pool) and its header parsed into credit fields. Fetched songs have
// their credit lists replaced wholesale; songs skipped before the fetch
// (no URL, image reference) keep theirs and are flagged for manual review.
// Results are applied in source order regardless of fetch completion order.
func Run(doc *library.Document, fetch Fetcher, opts Options) RunStats {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	stats := RunStats{TotalSongs: len(doc.Songs)}
	logging.Info().Int("songs", stats.TotalSongs).Int("workers", workers).Msg("enrichment started")

	results := make([]fetchResult, len(doc.Songs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				content, err := fetch(doc.Songs[i].Lyrics.MarkupURL)
				results[i] = fetchResult{content: content, err: err, ok: true}
			}
		}()
	}
	for i, s := range doc.Songs {
		if s.Lyrics == nil || s.Lyrics.MarkupURL == "" || isImageURL(s.Lyrics.MarkupURL) {
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, s := range doc.Songs {
		switch {
		case s.Lyrics == nil || s.Lyrics.MarkupURL == "":
			s.NeedsManualReview = true
			stats.NoLyricsURL++
			stats.NeedsManualReview++
		case isImageURL(s.Lyrics.MarkupURL):
			s.NeedsManualReview = true
			stats.ImageFilesSkipped++
			stats.NeedsManualReview++
		default:
			applyCredits(s, results[i], &stats)
		}
	}

	if opts.Version != "" {
		doc.Version = opts.Version
	}
	logging.Info().
		Int("parsed", stats.SuccessfullyParsed).
		Int("manual_review", stats.NeedsManualReview).
		Int("uncertain", stats.ParsingUncertain).
		Msg("enrichment finished")
	return stats
}

func applyCredits(s *library.Song, res fetchResult, stats *RunStats) {
	var credits Credits
	if res.err != nil {
		credits = Credits{
			NeedsManualReview: true,
			UnparsedString:    fmt.Sprintf("fetch error: %v", res.err),
		}
	} else {
		credits = ExtractCredits(res.content)
	}

	s.Composers = credits.Composers
	s.Lyricists = credits.Lyricists
	s.Translators = credits.Translators
	if len(credits.Translators) > 0 {
		stats.WithTranslators++
	}
	if credits.NeedsManualReview {
		s.NeedsManualReview = true
		s.UnparsedString = credits.UnparsedString
		stats.NeedsManualReview++
	}
	if credits.ParsingUncertain {
		s.ParsingUncertain = true
		s.UnparsedString = credits.UnparsedString
		stats.ParsingUncertain++
	}
	if (len(credits.Composers) > 0 || len(credits.Lyricists) > 0) &&
		!credits.NeedsManualReview && !credits.ParsingUncertain {
		stats.SuccessfullyParsed++
	}
}
