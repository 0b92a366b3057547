package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/KidCrippler/music-library-mcp/internal/format"
	"github.com/KidCrippler/music-library-mcp/internal/library"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print library statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		out, err := format.Stats(lib.Stats(), format.Parse(flagFormat))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var (
	searchQuery      string
	searchArtist     string
	searchCategory   string
	searchComposer   string
	searchLyricist   string
	searchTranslator string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search songs by any combination of criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		songs := lib.Search(library.SearchParams{
			Query:      searchQuery,
			Artist:     searchArtist,
			CategoryID: searchCategory,
			Composer:   searchComposer,
			Lyricist:   searchLyricist,
			Translator: searchTranslator,
		})
		out, err := format.Songs(songs, format.Parse(flagFormat))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var (
	collabsLimit    int
	collabsMinSongs int
	collabsLyricist string
	collabsComposer string
)

var collabsCmd = &cobra.Command{
	Use:   "collabs",
	Short: "List lyricist and composer collaborations",
	Long: `List collaborations sorted by shared song count. With --lyricist or
--composer the list narrows to that person's pairs; with both, the songs of
that exact pair are printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		f := format.Parse(flagFormat)

		if collabsLyricist != "" && collabsComposer != "" {
			rec := lib.CollaborationSongs(collabsLyricist, collabsComposer)
			if rec == nil {
				return fmt.Errorf("no collaboration between lyricist %q and composer %q",
					collabsLyricist, collabsComposer)
			}
			out, err := format.Songs(rec.Songs, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		var collabs []*library.Collaboration
		switch {
		case collabsLyricist != "":
			collabs = lib.CollaborationsByLyricist(collabsLyricist)
		case collabsComposer != "":
			collabs = lib.CollaborationsByComposer(collabsComposer)
		default:
			collabs = lib.AllCollaborations(0)
		}
		if collabsMinSongs > 1 {
			filtered := collabs[:0:0]
			for _, c := range collabs {
				if c.SongCount >= collabsMinSongs {
					filtered = append(filtered, c)
				}
			}
			collabs = filtered
		}
		if collabsLimit > 0 && collabsLimit < len(collabs) {
			collabs = collabs[:collabsLimit]
		}

		out, err := format.Collaborations(collabs, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var (
	discoverLanguage string
	discoverCount    int
	discoverSeed     int64
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Random song and contributor discovery with fame ranks",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		var rng *rand.Rand
		if discoverSeed != 0 {
			rng = rand.New(rand.NewSource(discoverSeed))
		}
		d := lib.RandomDiscovery(rng, discoverLanguage, discoverCount)
		out, err := format.Discovery(d, format.Parse(flagFormat))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "substring match on song name or singer")
	searchCmd.Flags().StringVar(&searchArtist, "artist", "", "exact artist name (case-insensitive)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "category id")
	searchCmd.Flags().StringVar(&searchComposer, "composer", "", "exact composer name (case-insensitive)")
	searchCmd.Flags().StringVar(&searchLyricist, "lyricist", "", "exact lyricist name (case-insensitive)")
	searchCmd.Flags().StringVar(&searchTranslator, "translator", "", "exact translator name (case-insensitive)")

	collabsCmd.Flags().IntVar(&collabsLimit, "limit", 20, "max collaborations to print (0 = all)")
	collabsCmd.Flags().IntVar(&collabsMinSongs, "min-songs", 0, "only pairs with at least this many shared songs")
	collabsCmd.Flags().StringVar(&collabsLyricist, "lyricist", "", "narrow to this lyricist")
	collabsCmd.Flags().StringVar(&collabsComposer, "composer", "", "narrow to this composer")

	discoverCmd.Flags().StringVar(&discoverLanguage, "language", "both", "hebrew, english or both")
	discoverCmd.Flags().IntVar(&discoverCount, "count", 5, "songs and names per list")
	discoverCmd.Flags().Int64Var(&discoverSeed, "seed", 0, "random seed (0 = nondeterministic)")
}
