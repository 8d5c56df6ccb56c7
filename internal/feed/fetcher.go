package feed

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const fetchTimeout = 20 * time.Second

type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}
	return &Fetcher{parser: parser}
}

// Fetch retrieves and parses one RSS/Atom feed. A failure here is scoped to
// the single feed; callers skip it and move on.
func (f *Fetcher) Fetch(feedURL string) (*gofeed.Feed, error) {
	feed, err := f.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}
	return feed, nil
}
