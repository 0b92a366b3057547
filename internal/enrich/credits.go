// Package enrich extracts composer/lyricist/translator credits from lyric
// markup files and folds them back into the song document.
package enrich

import (
	"regexp"
	"strings"
)

// Credits is the outcome of parsing one lyric file's header lines. Nil credit
// slices mean "nothing extracted for this role".
type Credits struct {
	Composers         []string
	Lyricists         []string
	Translators       []string
	NeedsManualReview bool
	ParsingUncertain  bool
	UnparsedString    string
}

// headerLines caps how far into the file credits are looked for.
const headerLines = 5

var (
	// Name connectors: ampersand, comma, en dash, English "and", Hebrew vav
	// prefix on the following word.
	nameSeparators = regexp.MustCompile(`[&,]|–|\sand\s|\sו`)
	plusSuffix     = regexp.MustCompile(`\s*\(\+\d+\)\s*`)

	hebTranslator = regexp.MustCompile(`תרגום\s*:\s*([^\n]+?)(?:\s+(?:מילים|לחן)|$)`)
	hebCombined   = regexp.MustCompile(`מילים\s*ולחן\s*:\s*([^\n\t]+?)(?:\s+תרגום|$)`)
	hebLyrics     = regexp.MustCompile(`מילים\s*:\s*([^\n\t]+?)(?:\s+(?:לחן|תרגום)|$)`)
	hebMusic      = regexp.MustCompile(`לחן\s*:\s*([^\n\t]+?)(?:\s+(?:מילים|תרגום)|$)`)

	engCombined = regexp.MustCompile(`(?i)Lyrics\s+and\s+Music\s*:\s*([^\n]+)`)
	engLyrics   = regexp.MustCompile(`(?i)Lyrics\s*:\s*([^\n]+?)(?:\s+Music|$)`)
	engMusic    = regexp.MustCompile(`(?i)Music\s*:\s*([^\n]+?)(?:\s+Lyrics|$)`)
)

// splitNames breaks a credit string into individual names, dropping (+N)
// participant-count suffixes and empty fragments.
func splitNames(s string) []string {
	var names []string
	for _, part := range nameSeparators.Split(s, -1) {
		name := strings.TrimSpace(plusSuffix.ReplaceAllString(strings.TrimSpace(part), ""))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parseSlashLine handles the Hebrew slash header: title – singer / composer
// / lyricist. Any other slash count is flagged uncertain with the raw line
// preserved.
func parseSlashLine(line string) (composers, lyricists []string, uncertain bool, unparsed string) {
	if !strings.Contains(line, "/") {
		return nil, nil, false, ""
	}
	parts := strings.Split(line, "/")
	if len(parts) != 3 {
		return nil, nil, true, strings.TrimSpace(line)
	}
	return splitNames(strings.TrimSpace(parts[1])), splitNames(strings.TrimSpace(parts[2])), false, ""
}

// parseHebrewLabels handles explicit Hebrew labels in the first three lines:
// מילים: / לחן: / מילים ולחן: / תרגום:.
func parseHebrewLabels(lines []string) (composers, lyricists, translators []string) {
	text := joinHeader(lines, 3)

	if m := hebTranslator.FindStringSubmatch(text); m != nil {
		translators = splitNames(strings.TrimSpace(m[1]))
	}
	if m := hebCombined.FindStringSubmatch(text); m != nil {
		names := splitNames(strings.TrimSpace(m[1]))
		return names, names, translators
	}
	if m := hebLyrics.FindStringSubmatch(text); m != nil {
		lyricists = splitNames(strings.TrimSpace(m[1]))
	}
	if m := hebMusic.FindStringSubmatch(text); m != nil {
		composers = splitNames(strings.TrimSpace(m[1]))
	}
	return composers, lyricists, translators
}

// parseEnglishLabels handles Lyrics: / Music: / Lyrics and Music: in the
// first three lines, case-insensitively.
func parseEnglishLabels(lines []string) (composers, lyricists []string) {
	text := joinHeader(lines, 3)

	if m := engCombined.FindStringSubmatch(text); m != nil {
		names := splitNames(strings.TrimSpace(m[1]))
		return names, names
	}
	if m := engLyrics.FindStringSubmatch(text); m != nil {
		lyricists = splitNames(strings.TrimSpace(m[1]))
	}
	if m := engMusic.FindStringSubmatch(text); m != nil {
		composers = splitNames(strings.TrimSpace(m[1]))
	}
	return composers, lyricists
}

func joinHeader(lines []string, n int) string {
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// ExtractCredits parses the header of a lyric markup file. Formats are tried
// in order: Hebrew slash line, Hebrew labels, English labels; a file matching
// none is flagged for manual review with its first line preserved.
func ExtractCredits(content string) Credits {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(raw) > headerLines {
		raw = raw[:headerLines]
	}
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return Credits{NeedsManualReview: true}
	}

	composers, lyricists, uncertain, unparsed := parseSlashLine(lines[0])
	if len(composers) > 0 || len(lyricists) > 0 {
		_, _, translators := parseHebrewLabels(lines)
		c := Credits{
			Composers:        composers,
			Lyricists:        lyricists,
			Translators:      translators,
			ParsingUncertain: uncertain,
		}
		if uncertain {
			c.UnparsedString = unparsed
		}
		return c
	}

	hc, hl, ht := parseHebrewLabels(lines)
	if len(hc) > 0 || len(hl) > 0 || len(ht) > 0 {
		return Credits{Composers: hc, Lyricists: hl, Translators: ht}
	}

	ec, el := parseEnglishLabels(lines)
	if len(ec) > 0 || len(el) > 0 {
		return Credits{Composers: ec, Lyricists: el}
	}

	return Credits{NeedsManualReview: true, UnparsedString: lines[0]}
}
