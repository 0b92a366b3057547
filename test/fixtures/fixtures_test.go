package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenTestLibrary(t *testing.T) {
	lib := OpenTestLibrary(t)

	st := lib.Stats()
	require.Equal(t, 8, st.TotalSongs)
	require.Equal(t, 3, st.TotalCategories)
	require.Equal(t, "2025_10_09", st.Version)

	song := lib.SongByID(5)
	require.NotNil(t, song)
	require.Equal(t, "גשר צר", song.Name)
	require.Equal(t, []string{"אברהם שלונסקי"}, song.Translators)
}
