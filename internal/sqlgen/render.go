package sqlgen

import "strings"

// Header is the fixed first line of every generated migration.
const Header = "-- Generated SQL code for configuring timeseries maintenance"

// Render assembles the migration text: the header, then every expanded
// block in order, each section followed by exactly one blank line.
// Trailing newlines on a block are normalized so the separation stays one
// blank line whether or not the template file ends in a newline.
//
// The whole buffer is built in memory; the caller performs the single
// write.
func Render(blocks []string) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")
	for _, block := range blocks {
		b.WriteString(strings.TrimRight(block, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}
