// Package document handles the boundary between stored marked-up text
// and external document files: decoding uploads into paragraph lines,
// encoding exams into a downloadable workbook, and stripping markup
// for export.
package document

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

var lineBreakReplacer = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
)

// Sanitize converts <br>-style line breaks into real newlines and
// strips any remaining markup tags. Stored content keeps its markup;
// this runs exactly once per field, at export time.
func Sanitize(s string) string {
	s = lineBreakReplacer.Replace(s)
	return tagPattern.ReplaceAllString(s, "")
}
