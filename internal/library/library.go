package library

import "sort"

// Library is the read-only snapshot: the flat record lists plus every derived
// index. Built once by New, never mutated afterwards.
type Library struct {
	doc        *Document
	songs      []*Song
	categories []*Category

	songsByID      map[int]*Song
	categoriesByID map[string]*Category

	byArtist     *nameIndex
	byComposer   *nameIndex
	byLyricist   *nameIndex
	byTranslator *nameIndex
	byCategory   map[string][]*Song

	collabs     map[collabKey]*Collaboration
	collabOrder []collabKey
}

// New builds a Library from an already loaded document. Construction is a
// single sequential pass per index; it cannot fail on well-formed input
// (records missing a field are simply left out of that field's index).
func New(doc *Document) *Library {
	lib := &Library{
		doc:            doc,
		songs:          doc.Songs,
		categories:     doc.Categories,
		songsByID:      make(map[int]*Song),
		categoriesByID: make(map[string]*Category),
		byCategory:     make(map[string][]*Song),
		collabs:        make(map[collabKey]*Collaboration),
	}

	for _, s := range lib.songs {
		if s.ID != 0 {
			lib.songsByID[s.ID] = s
		}
	}
	for _, c := range lib.categories {
		if c.ID != "" {
			lib.categoriesByID[c.ID] = c
		}
	}
	for _, s := range lib.songs {
		for _, id := range s.CategoryIDs {
			lib.byCategory[id] = append(lib.byCategory[id], s)
		}
	}

	lib.byArtist = buildIndex(lib.songs, func(s *Song) []string { return []string{s.Singer} })
	lib.byComposer = buildIndex(lib.songs, func(s *Song) []string { return s.Composers })
	lib.byLyricist = buildIndex(lib.songs, func(s *Song) []string { return s.Lyricists })
	lib.byTranslator = buildIndex(lib.songs, func(s *Song) []string { return s.Translators })

	lib.buildCollaborations()
	return lib
}

// SongByID returns the song with the given id, or nil when absent.
func (l *Library) SongByID(id int) *Song {
	return l.songsByID[id]
}

// CategoryByID returns the category with the given id, or nil when absent.
func (l *Library) CategoryByID(id string) *Category {
	return l.categoriesByID[id]
}

// AllSongs returns the flat song list, offset then limit applied.
// limit <= 0 means no limit.
func (l *Library) AllSongs(limit, offset int) []*Song {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(l.songs) {
		return []*Song{}
	}
	rest := l.songs[offset:]
	if limit <= 0 || limit >= len(rest) {
		return rest
	}
	return rest[:limit]
}

// AllCategories returns the category list as loaded.
func (l *Library) AllCategories() []*Category {
	return l.categories
}

// SongsByArtist returns the performer bucket for name (case-insensitive),
// in source order. Empty slice when the key has no bucket.
func (l *Library) SongsByArtist(name string) []*Song {
	return l.byArtist.bucket(name)
}

// SongsByComposer returns the composer bucket for name.
func (l *Library) SongsByComposer(name string) []*Song {
	return l.byComposer.bucket(name)
}

// SongsByLyricist returns the lyricist bucket for name.
func (l *Library) SongsByLyricist(name string) []*Song {
	return l.byLyricist.bucket(name)
}

// SongsByTranslator returns the translator bucket for name.
func (l *Library) SongsByTranslator(name string) []*Song {
	return l.byTranslator.bucket(name)
}

// SongsByCategory returns songs referencing the category id (exact key, not
// normalized), in source order.
func (l *Library) SongsByCategory(id string) []*Song {
	if songs, ok := l.byCategory[id]; ok {
		return songs
	}
	return []*Song{}
}

// Contributor is one name bucket summary: the canonical display name and how
// many songs sit in its bucket.
type Contributor struct {
	Name      string `json:"name"`
	SongCount int    `json:"song_count"`
}

// AllArtists lists every performer with a song count, sorted by name.
func (l *Library) AllArtists() []Contributor { return l.byArtist.contributors() }

// AllComposers lists every composer with a song count, sorted by name.
func (l *Library) AllComposers() []Contributor { return l.byComposer.contributors() }

// AllLyricists lists every lyricist with a song count, sorted by name.
func (l *Library) AllLyricists() []Contributor { return l.byLyricist.contributors() }

// AllTranslators lists every translator with a song count, sorted by name.
func (l *Library) AllTranslators() []Contributor { return l.byTranslator.contributors() }

func sortContributors(out []Contributor) {
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
}
