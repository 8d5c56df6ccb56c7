package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Raw date layouts tried when gofeed's own parser gave up on the field.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PublishedAt extracts a timezone-aware publish time from the item, trying
// the published date first and the updated date second. When no field is
// present or none parses, it returns now: undated items are deliberately
// treated as fresh rather than dropped.
func PublishedAt(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return inUTC(*item.PublishedParsed)
	}
	if item.UpdatedParsed != nil {
		return inUTC(*item.UpdatedParsed)
	}
	for _, raw := range []string{item.Published, item.Updated} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return inUTC(t)
			}
		}
	}
	return now
}

// inUTC pins the timestamp to UTC. Layouts without zone information parse
// as UTC already, so naive dates end up treated as UTC per contract.
func inUTC(t time.Time) time.Time {
	return t.UTC()
}
