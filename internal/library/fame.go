package library

import (
	"math"
	"math/rand"
	"sort"
	"strings"
)

// FameRank is the strict-less-than percentile rank of songCount within
// counts, truncated to an integer in [0,100]. Ties do not count as "fewer".
// Returns 0 for an empty population or a zero count.
func FameRank(songCount int, counts []int) int {
	if songCount == 0 || len(counts) == 0 {
		return 0
	}
	fewer := 0
	for _, c := range counts {
		if c < songCount {
			fewer++
		}
	}
	return 100 * fewer / len(counts)
}

// Accepted category display names per language filter, normalized. A
// localized spelling is accepted alongside the English one.
var languageCategories = map[string][]string{
	"hebrew":  {"hebrew", "עברית"},
	"english": {"english", "אנגלית"},
}

// DiscoveredSong is a sampled song with its composite fame score.
type DiscoveredSong struct {
	Song      *Song `json:"song"`
	FameScore int   `json:"fame_score"`
}

// DiscoveredName is a sampled contributor name with its fame rank.
type DiscoveredName struct {
	Name     string `json:"name"`
	FameRank int    `json:"fame_rank"`
}

// DiscoveryCounts are the sizes of the four result lists.
type DiscoveryCounts struct {
	Songs     int `json:"songs"`
	Artists   int `json:"artists"`
	Composers int `json:"composers"`
	Lyricists int `json:"lyricists"`
}

// Discovery is the weighted-random discovery result.
type Discovery struct {
	LanguageFilter string           `json:"language_filter"`
	Songs          []DiscoveredSong `json:"songs"`
	Artists        []DiscoveredName `json:"artists"`
	Composers      []DiscoveredName `json:"composers"`
	Lyricists      []DiscoveredName `json:"lyricists"`
	Counts         DiscoveryCounts  `json:"counts"`
}

// RandomDiscovery draws up to count random songs from the language subset,
// plus independent samples of the distinct performer/composer/lyricist names
// appearing in that subset, each annotated with a fame rank computed against
// the full population of the respective index. Each list is sorted by fame
// descending; ties keep sampling order. A nil rng uses the process-level
// source; pass a seeded one for deterministic output.
func (l *Library) RandomDiscovery(rng *rand.Rand, language string, count int) *Discovery {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = "both"
	}
	subset := l.languageSubset(language)

	out := &Discovery{LanguageFilter: language}
	out.Songs = l.sampleSongs(rng, subset, count)
	out.Artists = l.sampleNames(rng, distinctNames(subset, func(s *Song) []string { return []string{s.Singer} }), l.byArtist, count)
	out.Composers = l.sampleNames(rng, distinctNames(subset, func(s *Song) []string { return s.Composers }), l.byComposer, count)
	out.Lyricists = l.sampleNames(rng, distinctNames(subset, func(s *Song) []string { return s.Lyricists }), l.byLyricist, count)
	out.Counts = DiscoveryCounts{
		Songs:     len(out.Songs),
		Artists:   len(out.Artists),
		Composers: len(out.Composers),
		Lyricists: len(out.Lyricists),
	}
	return out
}

// languageSubset resolves the filter to a song subset: "both" is every song;
// otherwise the bucket of the category whose display name matches an accepted
// spelling. An unresolved category falls back to the full set rather than an
// empty result.
func (l *Library) languageSubset(language string) []*Song {
	accepted, ok := languageCategories[language]
	if !ok {
		return l.songs
	}
	for _, c := range l.categories {
		name := Key(c.Name)
		for _, want := range accepted {
			if name == want {
				return l.SongsByCategory(c.ID)
			}
		}
	}
	return l.songs
}

// sampleSongs draws min(count, len(subset)) songs without replacement and
// scores each one: floor(0.6*performer + 0.25*avg(composers) +
// 0.15*avg(lyricists)), empty credit lists contributing 0 to their term.
func (l *Library) sampleSongs(rng *rand.Rand, subset []*Song, count int) []DiscoveredSong {
	picked := samplePtr(rng, subset, count)
	memo := newFameMemo(l)
	out := make([]DiscoveredSong, 0, len(picked))
	for _, s := range picked {
		performer := memo.rank(l.byArtist, s.Singer)
		composite := 0.6*float64(performer) +
			0.25*memo.avgRank(l.byComposer, s.Composers) +
			0.15*memo.avgRank(l.byLyricist, s.Lyricists)
		out = append(out, DiscoveredSong{Song: s, FameScore: int(math.Floor(composite))})
	}
	// Stable: ties keep sampling order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].FameScore > out[j].FameScore })
	return out
}

func (l *Library) sampleNames(rng *rand.Rand, names []string, idx *nameIndex, count int) []DiscoveredName {
	picked := sampleStr(rng, names, count)
	memo := newFameMemo(l)
	out := make([]DiscoveredName, 0, len(picked))
	for _, name := range picked {
		out = append(out, DiscoveredName{Name: name, FameRank: memo.rank(idx, name)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FameRank > out[j].FameRank })
	return out
}

// distinctNames collects the distinct non-empty display names the field
// yields anywhere in the subset, first appearance order.
func distinctNames(subset []*Song, field func(*Song) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range subset {
		for _, name := range field(s) {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// fameMemo caches fame ranks per normalized name within one discovery call.
// Populations are snapshotted lazily per index so every rank in a call
// compares against the same full-population cardinalities.
type fameMemo struct {
	lib    *Library
	ranks  map[*nameIndex]map[string]int
	counts map[*nameIndex][]int
}

func newFameMemo(l *Library) *fameMemo {
	return &fameMemo{
		lib:    l,
		ranks:  make(map[*nameIndex]map[string]int),
		counts: make(map[*nameIndex][]int),
	}
}

func (m *fameMemo) rank(idx *nameIndex, name string) int {
	key := Key(name)
	if key == "" {
		return 0
	}
	byName, ok := m.ranks[idx]
	if !ok {
		byName = make(map[string]int)
		m.ranks[idx] = byName
	}
	if r, ok := byName[key]; ok {
		return r
	}
	counts, ok := m.counts[idx]
	if !ok {
		counts = idx.counts()
		m.counts[idx] = counts
	}
	r := FameRank(len(idx.buckets[key]), counts)
	byName[key] = r
	return r
}

// avgRank averages the fame ranks of names; an empty list contributes 0.
func (m *fameMemo) avgRank(idx *nameIndex, names []string) float64 {
	if len(names) == 0 {
		return 0
	}
	total := 0
	for _, name := range names {
		total += m.rank(idx, name)
	}
	return float64(total) / float64(len(names))
}

// samplePtr draws min(count, len(pool)) elements uniformly without
// replacement, keeping the draw order.
func samplePtr(rng *rand.Rand, pool []*Song, count int) []*Song {
	if count <= 0 || len(pool) == 0 {
		return []*Song{}
	}
	perm := rng.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]*Song, 0, count)
	for _, i := range perm[:count] {
		out = append(out, pool[i])
	}
	return out
}

func sampleStr(rng *rand.Rand, pool []string, count int) []string {
	if count <= 0 || len(pool) == 0 {
		return []string{}
	}
	perm := rng.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]string, 0, count)
	for _, i := range perm[:count] {
		out = append(out, pool[i])
	}
	return out
}

