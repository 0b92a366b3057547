package format

import (
	"encoding/csv"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/KidCrippler/music-library-mcp/internal/library"
)

// Songs renders a song list.
func Songs(songs []*library.Song, f OutputFormat) (string, error) {
	switch f {
	case FormatJSON:
		return marshal(map[string]any{"songs": songs, "count": len(songs)})
	case FormatCSV:
		return csvSongs(songs)
	default:
		return tableSongs(songs), nil
	}
}

// Contributors renders a name/count list. role names the list in empty and
// CSV output ("artists", "composers", ...).
func Contributors(role string, cs []library.Contributor, f OutputFormat) (string, error) {
	switch f {
	case FormatJSON:
		return marshal(map[string]any{role: cs, "count": len(cs)})
	case FormatCSV:
		return csvContributors(cs)
	default:
		return tableContributors(role, cs), nil
	}
}

// Collaborations renders lyricist×composer records.
func Collaborations(cs []*library.Collaboration, f OutputFormat) (string, error) {
	switch f {
	case FormatJSON:
		return marshal(map[string]any{"collaborations": cs, "count": len(cs)})
	case FormatCSV:
		return csvCollaborations(cs)
	default:
		return tableCollaborations(cs), nil
	}
}

// Stats renders library statistics. CSV falls back to JSON: the nested
// category list has no flat row shape.
func Stats(st library.Stats, f OutputFormat) (string, error) {
	switch f {
	case FormatJSON, FormatCSV:
		return marshal(st)
	default:
		return tableStats(st), nil
	}
}

// Discovery renders a discovery result. CSV falls back to JSON for the same
// reason as Stats.
func Discovery(d *library.Discovery, f OutputFormat) (string, error) {
	switch f {
	case FormatJSON, FormatCSV:
		return marshal(d)
	default:
		return tableDiscovery(d), nil
	}
}

func marshal(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func csvSongs(songs []*library.Song) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"id", "name", "singer", "composers", "lyricists", "translators"})
	for _, s := range songs {
		w.Write([]string{
			fmt.Sprint(s.ID), s.Name, s.Singer,
			strings.Join(s.Composers, "; "),
			strings.Join(s.Lyricists, "; "),
			strings.Join(s.Translators, "; "),
		})
	}
	w.Flush()
	return b.String(), w.Error()
}

func csvContributors(cs []library.Contributor) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"name", "song_count"})
	for _, c := range cs {
		w.Write([]string{c.Name, fmt.Sprint(c.SongCount)})
	}
	w.Flush()
	return b.String(), w.Error()
}

func csvCollaborations(cs []*library.Collaboration) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write([]string{"lyricist", "composer", "song_count"})
	for _, c := range cs {
		w.Write([]string{c.Lyricist, c.Composer, fmt.Sprint(c.SongCount)})
	}
	w.Flush()
	return b.String(), w.Error()
}
