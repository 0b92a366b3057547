package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KidCrippler/music-library-mcp/internal/enrich"
	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/review"
)

var (
	enrichOutput  string
	enrichVersion string
	enrichWorkers int
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Extract credits from lyric markup files into the document",
	Long: `Fetch every song's lyric markup and parse composer, lyricist and
translator credits out of its header lines. Songs whose header cannot be
parsed are flagged for manual review. The enriched document is written to
--output; the source document is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := library.LoadDocument(cfg.Source)
		if err != nil {
			return err
		}

		workers := enrichWorkers
		if workers == 0 {
			workers = cfg.Enrich.Workers
		}
		stats := enrich.Run(doc, enrich.HTTPFetcher(nil), enrich.Options{
			Workers: workers,
			Version: enrichVersion,
		})
		if err := library.SaveDocument(enrichOutput, doc); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total songs:         %d\n", stats.TotalSongs)
		fmt.Fprintf(out, "Successfully parsed: %d\n", stats.SuccessfullyParsed)
		fmt.Fprintf(out, "With translators:    %d\n", stats.WithTranslators)
		fmt.Fprintf(out, "Needs manual review: %d\n", stats.NeedsManualReview)
		fmt.Fprintf(out, "Parsing uncertain:   %d\n", stats.ParsingUncertain)
		fmt.Fprintf(out, "Image files skipped: %d\n", stats.ImageFilesSkipped)
		fmt.Fprintf(out, "No lyrics URL:       %d\n", stats.NoLyricsURL)
		fmt.Fprintf(out, "\nEnriched document saved to %s\n", enrichOutput)
		return nil
	},
}

var applyReviewsOutput string

var applyReviewsCmd = &cobra.Command{
	Use:   "apply-reviews <reviews.json>",
	Short: "Apply manually reviewed credits to the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := library.LoadDocument(cfg.Source)
		if err != nil {
			return err
		}
		reviews, err := review.LoadReviews(args[0])
		if err != nil {
			return err
		}

		res := review.Apply(doc, reviews)
		if err := library.SaveDocument(applyReviewsOutput, doc); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total songs:              %d\n", res.TotalSongs)
		fmt.Fprintf(out, "Reviews applied:          %d\n", res.Applied)
		fmt.Fprintf(out, "Still need manual review: %d\n", res.Remaining)
		fmt.Fprintf(out, "\nDocument saved to %s\n", applyReviewsOutput)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "songs_enriched.json", "output document path")
	enrichCmd.Flags().StringVar(&enrichVersion, "version-stamp", "", "new document version (empty keeps current)")
	enrichCmd.Flags().IntVar(&enrichWorkers, "workers", 0, "concurrent fetches (0 = config default)")

	applyReviewsCmd.Flags().StringVar(&applyReviewsOutput, "output", "songs_final.json", "output document path")
}
