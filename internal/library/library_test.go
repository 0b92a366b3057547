package library

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testDoc is a small catalog exercising every index: shared performers with
// inconsistent casing, multi-composer songs, a translator, categories, and a
// song without an id.
func testDoc() *Document {
	return &Document{
		Version: "2025_10_09",
		Title:   "Test Library",
		Songs: []*Song{
			{ID: 1, Name: "Love Song", Singer: "Alice", Composers: []string{"Yoni"}, Lyricists: []string{"Zed"}, CategoryIDs: []string{"heb"}},
			{ID: 2, Name: "Second", Singer: "ALICE ", Composers: []string{"Yoni"}, Lyricists: []string{"Zed"}, CategoryIDs: []string{"heb"}},
			{ID: 3, Name: "Third", Singer: "Bob", Composers: []string{"Carla", "Dana"}, Lyricists: []string{"Ann", "Ben"}, Translators: []string{"Tova"}, CategoryIDs: []string{"eng"}},
			{ID: 4, Name: "X", Singer: "Lovett", CategoryIDs: []string{"eng", "kids"}},
			{Name: "No ID", Singer: "Ghost"},
		},
		Categories: []*Category{
			{ID: "heb", Name: "עברית"},
			{ID: "eng", Name: "English"},
		},
	}
}

func TestKey(t *testing.T) {
	require.Equal(t, "alice", Key("  Alice "))
	require.Equal(t, "אהוד מנור", Key("אהוד מנור "))
	require.Equal(t, "", Key("   "))
}

func TestSongByID(t *testing.T) {
	lib := New(testDoc())
	s := lib.SongByID(3)
	require.NotNil(t, s)
	require.Equal(t, "Third", s.Name)
	require.Nil(t, lib.SongByID(99))
}

func TestSongsByArtist_CaseInsensitive(t *testing.T) {
	lib := New(testDoc())
	songs := lib.SongsByArtist("alice")
	require.Len(t, songs, 2)
	require.Equal(t, 1, songs[0].ID)
	require.Equal(t, 2, songs[1].ID)

	require.Empty(t, lib.SongsByArtist("nobody"))
}

func TestBucketsPreserveSourceOrder(t *testing.T) {
	lib := New(testDoc())
	songs := lib.SongsByComposer("YONI")
	require.Len(t, songs, 2)
	require.Equal(t, []int{songs[0].ID, songs[1].ID}, []int{1, 2})
}

func TestAllArtists_CanonicalNameAndCounts(t *testing.T) {
	lib := New(testDoc())
	artists := lib.AllArtists()
	byName := make(map[string]int)
	for _, a := range artists {
		byName[a.Name] = a.SongCount
	}
	// First raw spelling wins: "Alice" from song 1, not "ALICE " from song 2.
	require.Equal(t, 2, byName["Alice"])
	require.NotContains(t, byName, "ALICE ")
	require.Equal(t, 1, byName["Lovett"])
	require.Equal(t, 1, byName["Ghost"])

	// Sorted ascending by name (code-point order).
	for i := 1; i < len(artists); i++ {
		require.Less(t, artists[i-1].Name, artists[i].Name)
	}
}

func TestEveryComposerEntryIsIndexed(t *testing.T) {
	lib := New(testDoc())
	for _, s := range lib.AllSongs(0, 0) {
		for _, c := range s.Composers {
			require.Contains(t, lib.SongsByComposer(c), s)
		}
	}
}

func TestSongWithoutIDStaysInFlatList(t *testing.T) {
	lib := New(testDoc())
	require.Len(t, lib.AllSongs(0, 0), 5)
	require.Nil(t, lib.SongByID(0))
	require.Len(t, lib.SongsByArtist("ghost"), 1)
}

func TestAllSongs_Pagination(t *testing.T) {
	lib := New(testDoc())

	require.Len(t, lib.AllSongs(0, 0), 5)
	require.Len(t, lib.AllSongs(2, 0), 2)

	page := lib.AllSongs(2, 3)
	require.Len(t, page, 2)
	require.Equal(t, 4, page[0].ID)

	require.Empty(t, lib.AllSongs(10, 99))
	require.Len(t, lib.AllSongs(0, -1), 5)
}

func TestSongsByCategory_ExactKey(t *testing.T) {
	lib := New(testDoc())
	require.Len(t, lib.SongsByCategory("eng"), 2)
	require.Len(t, lib.SongsByCategory("kids"), 1)
	require.Empty(t, lib.SongsByCategory("ENG"))

	// Dangling reference: indexed under the key, no category metadata.
	require.Nil(t, lib.CategoryByID("kids"))
}

func TestRebuildIsDeterministic(t *testing.T) {
	a := New(testDoc())
	b := New(testDoc())

	require.Equal(t, a.AllArtists(), b.AllArtists())
	require.Equal(t, a.AllComposers(), b.AllComposers())
	require.Equal(t, a.AllCollaborations(0), b.AllCollaborations(0))
	require.Equal(t, a.Stats(), b.Stats())
}
