package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
)

// MatchesKeywords reports whether any keyword occurs in the item's title,
// description, or content. Matching is case-insensitive substring
// containment; keywords are trimmed first and blank ones never match.
func MatchesKeywords(item *gofeed.Item, keywords []string) bool {
	hay := strings.ToLower(item.Title + " " + item.Description + " " + item.Content)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(hay, kw) {
			return true
		}
	}
	return false
}
