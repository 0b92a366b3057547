package library

import "sort"

// collabKey identifies a collaboration by normalized names.
type collabKey struct {
	lyricist string
	composer string
}

// Collaboration is one lyricist×composer pair: the first-seen display
// spellings and the ids of every song where the pair co-occurs, in first
// insertion order, deduplicated by id. A self-pair (same person in both
// roles) is a valid record and means "self-authored".
type Collaboration struct {
	Lyricist  string `json:"lyricist"`
	Composer  string `json:"composer"`
	SongCount int    `json:"song_count"`
	SongIDs   []int  `json:"song_ids"`
}

// CollaborationSongs is a Collaboration with its ids resolved to full song
// records.
type CollaborationSongs struct {
	Lyricist  string  `json:"lyricist"`
	Composer  string  `json:"composer"`
	SongCount int     `json:"song_count"`
	SongIDs   []int   `json:"song_ids"`
	Songs     []*Song `json:"songs"`
}

// buildCollaborations accumulates the cartesian product of each song's
// lyricist and composer sets. A song with L lyricists and C composers
// contributes to exactly L×C records; its id is added to a record at most
// once even when distinct raw spellings normalize to the same pair.
func (l *Library) buildCollaborations() {
	for _, s := range l.songs {
		if s.ID == 0 || len(s.Lyricists) == 0 || len(s.Composers) == 0 {
			continue
		}
		for _, lyricist := range s.Lyricists {
			lyrKey := Key(lyricist)
			if lyrKey == "" {
				continue
			}
			for _, composer := range s.Composers {
				compKey := Key(composer)
				if compKey == "" {
					continue
				}
				key := collabKey{lyricist: lyrKey, composer: compKey}
				rec, ok := l.collabs[key]
				if !ok {
					rec = &Collaboration{Lyricist: lyricist, Composer: composer}
					l.collabs[key] = rec
					l.collabOrder = append(l.collabOrder, key)
				}
				if !containsID(rec.SongIDs, s.ID) {
					rec.SongIDs = append(rec.SongIDs, s.ID)
					rec.SongCount++
				}
			}
		}
	}
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AllCollaborations returns every collaboration sorted by song count
// descending, then lyricist name, then composer name. limit <= 0 means no
// limit.
func (l *Library) AllCollaborations(limit int) []*Collaboration {
	out := make([]*Collaboration, 0, len(l.collabOrder))
	for _, key := range l.collabOrder {
		out = append(out, l.collabs[key])
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.SongCount != b.SongCount {
			return a.SongCount > b.SongCount
		}
		if a.Lyricist != b.Lyricist {
			return a.Lyricist < b.Lyricist
		}
		return a.Composer < b.Composer
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// CollaborationSongs resolves the pair (exact match on normalized names) to
// its record with full songs attached. Ids no longer present in the store are
// silently dropped from Songs. Returns nil when the pair has no record.
func (l *Library) CollaborationSongs(lyricist, composer string) *CollaborationSongs {
	key := collabKey{lyricist: Key(lyricist), composer: Key(composer)}
	rec, ok := l.collabs[key]
	if !ok {
		return nil
	}
	songs := make([]*Song, 0, len(rec.SongIDs))
	for _, id := range rec.SongIDs {
		if s := l.songsByID[id]; s != nil {
			songs = append(songs, s)
		}
	}
	return &CollaborationSongs{
		Lyricist:  rec.Lyricist,
		Composer:  rec.Composer,
		SongCount: rec.SongCount,
		SongIDs:   rec.SongIDs,
		Songs:     songs,
	}
}

// CollaborationsByLyricist lists every record whose lyricist half matches
// name, sorted by song count descending.
func (l *Library) CollaborationsByLyricist(name string) []*Collaboration {
	return l.filterCollabs(func(key collabKey) bool { return key.lyricist == Key(name) })
}

// CollaborationsByComposer lists every record whose composer half matches
// name, sorted by song count descending.
func (l *Library) CollaborationsByComposer(name string) []*Collaboration {
	return l.filterCollabs(func(key collabKey) bool { return key.composer == Key(name) })
}

func (l *Library) filterCollabs(match func(collabKey) bool) []*Collaboration {
	out := []*Collaboration{}
	for _, key := range l.collabOrder {
		if match(key) {
			out = append(out, l.collabs[key])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SongCount > out[j].SongCount })
	return out
}
