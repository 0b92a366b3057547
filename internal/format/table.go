package format

import (
	"fmt"
	"strings"

	"github.com/KidCrippler/music-library-mcp/internal/library"
)

func tableSongs(songs []*library.Song) string {
	if len(songs) == 0 {
		return "No songs found."
	}
	var b strings.Builder
	b.WriteString("ID     | NAME                         | SINGER           | COMPOSERS            | LYRICISTS\n")
	b.WriteString("-------+------------------------------+------------------+----------------------+---------------------\n")
	for _, s := range songs {
		fmt.Fprintf(&b, "%6d | %-28s | %-16s | %-20s | %s\n",
			s.ID,
			truncate(s.Name, 28),
			truncate(s.Singer, 16),
			truncate(strings.Join(s.Composers, ", "), 20),
			truncate(strings.Join(s.Lyricists, ", "), 20))
	}
	return b.String()
}

func tableContributors(role string, cs []library.Contributor) string {
	if len(cs) == 0 {
		return fmt.Sprintf("No %s found.", role)
	}
	var b strings.Builder
	b.WriteString("NAME                           | SONGS\n")
	b.WriteString("-------------------------------+------\n")
	for _, c := range cs {
		fmt.Fprintf(&b, "%-30s | %d\n", truncate(c.Name, 30), c.SongCount)
	}
	return b.String()
}

func tableCollaborations(cs []*library.Collaboration) string {
	if len(cs) == 0 {
		return "No collaborations found."
	}
	var b strings.Builder
	b.WriteString("LYRICIST             | COMPOSER             | SONGS\n")
	b.WriteString("---------------------+----------------------+------\n")
	for _, c := range cs {
		fmt.Fprintf(&b, "%-20s | %-20s | %d\n",
			truncate(c.Lyricist, 20), truncate(c.Composer, 20), c.SongCount)
	}
	return b.String()
}

func tableStats(st library.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Library %q (version %s)\n\n", st.Title, st.Version)
	fmt.Fprintf(&b, "Songs:          %d\n", st.TotalSongs)
	fmt.Fprintf(&b, "Artists:        %d\n", st.TotalArtists)
	fmt.Fprintf(&b, "Composers:      %d\n", st.TotalComposers)
	fmt.Fprintf(&b, "Lyricists:      %d\n", st.TotalLyricists)
	fmt.Fprintf(&b, "Translators:    %d\n", st.TotalTranslators)
	fmt.Fprintf(&b, "Collaborations: %d\n", st.TotalCollaborations)
	fmt.Fprintf(&b, "Categories:     %d\n", st.TotalCategories)
	if len(st.Categories) > 0 {
		b.WriteString("\nCATEGORY             | SONGS\n")
		b.WriteString("---------------------+------\n")
		for _, c := range st.Categories {
			fmt.Fprintf(&b, "%-20s | %d\n", truncate(c.Name, 20), c.SongCount)
		}
	}
	return b.String()
}

func tableDiscovery(d *library.Discovery) string {
	if d == nil {
		return "No discovery."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Random discovery (language=%s)\n\n", d.LanguageFilter)
	b.WriteString("FAME | SONG                         | SINGER\n")
	b.WriteString("-----+------------------------------+-----------------\n")
	for _, s := range d.Songs {
		fmt.Fprintf(&b, "%4d | %-28s | %s\n", s.FameScore, truncate(s.Song.Name, 28), s.Song.Singer)
	}
	writeNameBlock(&b, "ARTISTS", d.Artists)
	writeNameBlock(&b, "COMPOSERS", d.Composers)
	writeNameBlock(&b, "LYRICISTS", d.Lyricists)
	return b.String()
}

func writeNameBlock(b *strings.Builder, header string, names []library.DiscoveredName) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", header)
	for _, n := range names {
		fmt.Fprintf(b, "%4d | %s\n", n.FameRank, n.Name)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
