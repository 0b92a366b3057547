package library

import "strings"

// SearchParams are the multi-criteria search filters. Empty criteria are
// skipped, not treated as "match nothing".
type SearchParams struct {
	Query      string
	Artist     string
	CategoryID string
	Composer   string
	Lyricist   string
	Translator string
}

// Search starts from the full song list and intersects it (by id) with the
// bucket of every provided criterion, AND semantics across criteria. Query,
// if given, is a final case-insensitive substring filter on the song's name
// OR its performer. Results keep original relative order. No criteria returns
// the full set.
func (l *Library) Search(p SearchParams) []*Song {
	results := make([]*Song, len(l.songs))
	copy(results, l.songs)

	if p.Artist != "" {
		results = intersectByID(results, l.SongsByArtist(p.Artist))
	}
	if p.CategoryID != "" {
		results = intersectByID(results, l.SongsByCategory(p.CategoryID))
	}
	if p.Composer != "" {
		results = intersectByID(results, l.SongsByComposer(p.Composer))
	}
	if p.Lyricist != "" {
		results = intersectByID(results, l.SongsByLyricist(p.Lyricist))
	}
	if p.Translator != "" {
		results = intersectByID(results, l.SongsByTranslator(p.Translator))
	}

	if p.Query != "" {
		q := strings.ToLower(p.Query)
		filtered := make([]*Song, 0, len(results))
		for _, s := range results {
			if strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.Singer), q) {
				filtered = append(filtered, s)
			}
		}
		results = filtered
	}
	return results
}

func intersectByID(results, bucket []*Song) []*Song {
	ids := make(map[int]struct{}, len(bucket))
	for _, s := range bucket {
		ids[s.ID] = struct{}{}
	}
	out := make([]*Song, 0, len(results))
	for _, s := range results {
		if _, ok := ids[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// CategoryStat is a per-category song count for Stats.
type CategoryStat struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SongCount int    `json:"song_count"`
}

// Stats aggregates index cardinalities and document metadata.
type Stats struct {
	TotalSongs          int            `json:"total_songs"`
	TotalArtists        int            `json:"total_artists"`
	TotalComposers      int            `json:"total_composers"`
	TotalLyricists      int            `json:"total_lyricists"`
	TotalTranslators    int            `json:"total_translators"`
	TotalCollaborations int            `json:"total_collaborations"`
	TotalCategories     int            `json:"total_categories"`
	Version             string         `json:"version"`
	Title               string         `json:"title"`
	Categories          []CategoryStat `json:"categories"`
}

// Stats returns library-wide statistics.
func (l *Library) Stats() Stats {
	st := Stats{
		TotalSongs:          len(l.songs),
		TotalArtists:        len(l.byArtist.buckets),
		TotalComposers:      len(l.byComposer.buckets),
		TotalLyricists:      len(l.byLyricist.buckets),
		TotalTranslators:    len(l.byTranslator.buckets),
		TotalCollaborations: len(l.collabs),
		TotalCategories:     len(l.categories),
		Version:             l.doc.Version,
		Title:               l.doc.Title,
		Categories:          make([]CategoryStat, 0, len(l.categories)),
	}
	if st.Version == "" {
		st.Version = "unknown"
	}
	if st.Title == "" {
		st.Title = "unknown"
	}
	for _, c := range l.categories {
		st.Categories = append(st.Categories, CategoryStat{
			ID:        c.ID,
			Name:      c.Name,
			SongCount: len(l.byCategory[c.ID]),
		})
	}
	return st
}
