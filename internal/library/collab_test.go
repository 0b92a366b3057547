package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollaborations_SharedPair(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "A", Singer: "X", Composers: []string{"Y"}, Lyricists: []string{"Z"}},
		{ID: 2, Name: "B", Singer: "X", Composers: []string{"Y"}, Lyricists: []string{"Z"}},
	}}
	lib := New(doc)

	collabs := lib.AllCollaborations(0)
	require.Len(t, collabs, 1)
	require.Equal(t, "Z", collabs[0].Lyricist)
	require.Equal(t, "Y", collabs[0].Composer)
	require.Equal(t, 2, collabs[0].SongCount)
	require.Equal(t, []int{1, 2}, collabs[0].SongIDs)
}

func TestCollaborations_CartesianProduct(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 7, Name: "Quad", Lyricists: []string{"A", "B"}, Composers: []string{"C", "D"}},
	}}
	lib := New(doc)

	collabs := lib.AllCollaborations(0)
	require.Len(t, collabs, 4)
	for _, pair := range [][2]string{{"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}} {
		rec := lib.CollaborationSongs(pair[0], pair[1])
		require.NotNil(t, rec, "pair %v", pair)
		require.Equal(t, []int{7}, rec.SongIDs)
	}
}

func TestCollaborations_DedupeByID(t *testing.T) {
	// Distinct raw spellings normalize to the same pair; the song id must be
	// counted once.
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "A", Lyricists: []string{"Zed", "ZED "}, Composers: []string{"Yoni"}},
	}}
	lib := New(doc)

	collabs := lib.AllCollaborations(0)
	require.Len(t, collabs, 1)
	require.Equal(t, 1, collabs[0].SongCount)
	require.Equal(t, "Zed", collabs[0].Lyricist, "first spelling wins")
}

func TestCollaborations_SelfPair(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "Solo", Lyricists: []string{"Matti"}, Composers: []string{"Matti"}},
	}}
	lib := New(doc)

	rec := lib.CollaborationSongs("matti", "MATTI")
	require.NotNil(t, rec)
	require.Equal(t, "Matti", rec.Lyricist)
	require.Equal(t, "Matti", rec.Composer)
	require.Equal(t, 1, rec.SongCount)
}

func TestCollaborations_SkipIncompleteSongs(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "No lyricists", Composers: []string{"Y"}},
		{ID: 2, Name: "No composers", Lyricists: []string{"Z"}},
		{Name: "No id", Lyricists: []string{"Z"}, Composers: []string{"Y"}},
	}}
	lib := New(doc)
	require.Empty(t, lib.AllCollaborations(0))
}

func TestAllCollaborations_SortAndLimit(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "a", Lyricists: []string{"Lb"}, Composers: []string{"C"}},
		{ID: 2, Name: "b", Lyricists: []string{"La"}, Composers: []string{"C"}},
		{ID: 3, Name: "c", Lyricists: []string{"La"}, Composers: []string{"C"}},
	}}
	lib := New(doc)

	collabs := lib.AllCollaborations(0)
	require.Len(t, collabs, 2)
	// Count descending first, then lyricist name ascending.
	require.Equal(t, "La", collabs[0].Lyricist)
	require.Equal(t, 2, collabs[0].SongCount)
	require.Equal(t, "Lb", collabs[1].Lyricist)

	require.Len(t, lib.AllCollaborations(1), 1)
}

func TestCollaborationsByLyricistAndComposer(t *testing.T) {
	doc := &Document{Songs: []*Song{
		{ID: 1, Name: "a", Lyricists: []string{"Manor"}, Composers: []string{"Caspi"}},
		{ID: 2, Name: "b", Lyricists: []string{"Manor"}, Composers: []string{"Caspi"}},
		{ID: 3, Name: "c", Lyricists: []string{"Manor"}, Composers: []string{"Hirsh"}},
		{ID: 4, Name: "d", Lyricists: []string{"Alberstein"}, Composers: []string{"Caspi"}},
	}}
	lib := New(doc)

	byLyr := lib.CollaborationsByLyricist(" manor ")
	require.Len(t, byLyr, 2)
	require.Equal(t, "Caspi", byLyr[0].Composer)
	require.Equal(t, 2, byLyr[0].SongCount)
	require.Equal(t, "Hirsh", byLyr[1].Composer)

	byComp := lib.CollaborationsByComposer("CASPI")
	require.Len(t, byComp, 2)
	require.Equal(t, "Manor", byComp[0].Lyricist)

	require.Empty(t, lib.CollaborationsByLyricist("nobody"))
}

func TestCollaborationSongs_RoundTrip(t *testing.T) {
	lib := New(testDoc())
	for _, c := range lib.AllCollaborations(0) {
		rec := lib.CollaborationSongs(c.Lyricist, c.Composer)
		require.NotNil(t, rec)
		require.Equal(t, c.SongCount, rec.SongCount)
		require.Len(t, rec.Songs, len(rec.SongIDs))
	}
	require.Nil(t, lib.CollaborationSongs("no", "pair"))
}

func TestCollaborationCount_MatchesDistinctPairs(t *testing.T) {
	lib := New(testDoc())
	pairs := make(map[collabKey]struct{})
	for _, s := range lib.AllSongs(0, 0) {
		if s.ID == 0 || len(s.Lyricists) == 0 || len(s.Composers) == 0 {
			continue
		}
		for _, lyr := range s.Lyricists {
			for _, comp := range s.Composers {
				pairs[collabKey{Key(lyr), Key(comp)}] = struct{}{}
			}
		}
	}
	require.Len(t, lib.AllCollaborations(0), len(pairs))
}
