package library

// nameIndex maps a normalized name key to its songs in source order, plus the
// canonical display spelling for each key (first raw spelling seen, which is
// the first song in the bucket whose raw field entry maps to the key).
type nameIndex struct {
	buckets map[string][]*Song
	display map[string]string
	keys    []string // insertion order, for deterministic iteration
}

// buildIndex runs one pass over songs, appending each song to the bucket of
// every non-empty normalized value the field func yields. A song with two
// composers lands in two composer buckets.
func buildIndex(songs []*Song, field func(*Song) []string) *nameIndex {
	idx := &nameIndex{
		buckets: make(map[string][]*Song),
		display: make(map[string]string),
	}
	for _, s := range songs {
		for _, raw := range field(s) {
			key := Key(raw)
			if key == "" {
				continue
			}
			if _, ok := idx.buckets[key]; !ok {
				idx.keys = append(idx.keys, key)
				idx.display[key] = raw
			}
			idx.buckets[key] = append(idx.buckets[key], s)
		}
	}
	return idx
}

func (idx *nameIndex) bucket(name string) []*Song {
	if songs, ok := idx.buckets[Key(name)]; ok {
		return songs
	}
	return []*Song{}
}

// displayName resolves a key back to its canonical spelling, falling back to
// the key itself (should not happen for keys the index created).
func (idx *nameIndex) displayName(key string) string {
	if name, ok := idx.display[key]; ok {
		return name
	}
	return key
}

func (idx *nameIndex) contributors() []Contributor {
	out := make([]Contributor, 0, len(idx.keys))
	for _, key := range idx.keys {
		out = append(out, Contributor{
			Name:      idx.displayName(key),
			SongCount: len(idx.buckets[key]),
		})
	}
	sortContributors(out)
	return out
}

// counts returns every bucket's cardinality; the fame rank population.
func (idx *nameIndex) counts() []int {
	out := make([]int, 0, len(idx.keys))
	for _, key := range idx.keys {
		out = append(out, len(idx.buckets[key]))
	}
	return out
}
