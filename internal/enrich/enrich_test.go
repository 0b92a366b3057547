package enrich

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KidCrippler/music-library-mcp/internal/library"
)

func mapFetcher(pages map[string]string) Fetcher {
	return func(url string) (string, error) {
		content, ok := pages[url]
		if !ok {
			return "", fmt.Errorf("no such page %s", url)
		}
		return content, nil
	}
}

func lyricsRef(url string) *library.LyricsRef {
	return &library.LyricsRef{MarkupURL: url}
}

func TestRun_EnrichesFromMarkup(t *testing.T) {
	doc := &library.Document{
		Songs: []*library.Song{
			{ID: 1, Name: "Slash", Singer: "S", Lyrics: lyricsRef("p://1")},
			{ID: 2, Name: "NoURL", Singer: "S"},
			{ID: 3, Name: "Image", Singer: "S", Lyrics: lyricsRef("p://scan.JPG")},
			{ID: 4, Name: "Gone", Singer: "S", Lyrics: lyricsRef("p://missing"),
				Composers: []string{"Old"}},
			{ID: 5, Name: "English", Singer: "S", Lyrics: lyricsRef("p://5")},
			{ID: 6, Name: "Plain", Singer: "S", Lyrics: lyricsRef("p://6")},
		},
	}
	fetch := mapFetcher(map[string]string{
		"p://1": "שיר – זמר / מלחין / תמלילן",
		"p://5": "Title\nLyrics: John Music: Paul",
		"p://6": "just a first line",
	})

	stats := Run(doc, fetch, Options{Workers: 3, Version: "2025_10_09"})

	require.Equal(t, "2025_10_09", doc.Version)
	require.Equal(t, 6, stats.TotalSongs)
	require.Equal(t, 2, stats.SuccessfullyParsed)
	require.Equal(t, 1, stats.NoLyricsURL)
	require.Equal(t, 1, stats.ImageFilesSkipped)
	require.Equal(t, 4, stats.NeedsManualReview, "no URL, image, fetch error, unmatched header")

	require.Equal(t, []string{"מלחין"}, doc.Songs[0].Composers)
	require.Equal(t, []string{"תמלילן"}, doc.Songs[0].Lyricists)
	require.False(t, doc.Songs[0].NeedsManualReview)

	require.True(t, doc.Songs[1].NeedsManualReview)

	require.True(t, doc.Songs[2].NeedsManualReview)

	require.True(t, doc.Songs[3].NeedsManualReview)
	require.Nil(t, doc.Songs[3].Composers, "fetched songs have credits replaced wholesale")
	require.Contains(t, doc.Songs[3].UnparsedString, "fetch error")

	require.Equal(t, []string{"Paul"}, doc.Songs[4].Composers)
	require.Equal(t, []string{"John"}, doc.Songs[4].Lyricists)

	require.True(t, doc.Songs[5].NeedsManualReview)
	require.Equal(t, "just a first line", doc.Songs[5].UnparsedString)
}

func TestRun_SkippedSongsKeepCredits(t *testing.T) {
	doc := &library.Document{
		Songs: []*library.Song{
			{ID: 1, Name: "NoURL", Singer: "S", Composers: []string{"Kept"}},
		},
	}
	stats := Run(doc, mapFetcher(nil), Options{Workers: 1})

	require.Equal(t, []string{"Kept"}, doc.Songs[0].Composers)
	require.True(t, doc.Songs[0].NeedsManualReview)
	require.Equal(t, 1, stats.NoLyricsURL)
}

func TestRun_TranslatorCounted(t *testing.T) {
	doc := &library.Document{
		Songs: []*library.Song{
			{ID: 1, Name: "T", Singer: "S", Lyrics: lyricsRef("p://1")},
		},
	}
	fetch := mapFetcher(map[string]string{
		"p://1": "שיר – זמר / מלחין / תמלילן\nתרגום: מתרגם",
	})
	stats := Run(doc, fetch, Options{Workers: 2})

	require.Equal(t, []string{"מתרגם"}, doc.Songs[0].Translators)
	require.Equal(t, 1, stats.WithTranslators)
	require.Equal(t, 1, stats.SuccessfullyParsed)
}

func TestRun_DeterministicUnderConcurrency(t *testing.T) {
	const n = 50
	pages := make(map[string]string, n)
	songs := make([]*library.Song, 0, n)
	for i := 1; i <= n; i++ {
		url := fmt.Sprintf("p://%d", i)
		pages[url] = fmt.Sprintf("שיר – זמר / מלחין%d / תמלילן%d", i, i)
		songs = append(songs, &library.Song{ID: i, Name: fmt.Sprintf("S%d", i), Singer: "X", Lyrics: lyricsRef(url)})
	}
	doc := &library.Document{Songs: songs}

	stats := Run(doc, mapFetcher(pages), Options{Workers: 8})
	require.Equal(t, n, stats.SuccessfullyParsed)
	for i, s := range doc.Songs {
		require.Equal(t, []string{fmt.Sprintf("מלחין%d", i+1)}, s.Composers)
	}
}
