package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// excerptLength bounds summaries in characters, before the ellipsis.
const excerptLength = 300

// Excerpt strips markup from a feed summary and truncates the plain text to
// excerptLength runes, appending "..." when anything was cut. Summaries are
// third-party HTML, so the stripped form is what goes into the report.
func Excerpt(raw string) string {
	text := raw
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
		text = doc.Text()
	}
	runes := []rune(text)
	if len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "..."
	}
	return text
}
