// Package format renders engine results for the CLI.
package format

import "strings"

// OutputFormat selects output style.
type OutputFormat int

const (
	FormatTable OutputFormat = iota
	FormatJSON
	FormatCSV
)

// Parse maps a --format flag value to an OutputFormat. Unknown values fall
// back to table.
func Parse(s string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	default:
		return FormatTable
	}
}
