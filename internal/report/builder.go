package report

import (
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/thomaskoefod/newsbrief/internal/config"
	"github.com/thomaskoefod/newsbrief/internal/feed"
	"github.com/thomaskoefod/newsbrief/internal/logger"
	"github.com/thomaskoefod/newsbrief/pkg/models"
)

// FeedSource fetches one feed by URL. Satisfied by *feed.Fetcher.
type FeedSource interface {
	Fetch(url string) (*gofeed.Feed, error)
}

type Builder struct {
	cfg     *config.Config
	fetcher FeedSource
}

func NewBuilder(cfg *config.Config, fetcher FeedSource) *Builder {
	return &Builder{cfg: cfg, fetcher: fetcher}
}

// ReferenceTime is the report's notion of "now": current UTC shifted by the
// configured hour offset. The shift moves the whole recency window, matching
// how the digest has always been scheduled.
func (b *Builder) ReferenceTime() time.Time {
	return time.Now().UTC().Add(time.Duration(b.cfg.TZOffset) * time.Hour)
}

// Build runs the aggregation pipeline against every configured feed: fetch,
// filter by recency window and keywords, excerpt, sort newest first, dedupe
// by link (title when the link is absent), cap at the configured maximum.
// Feeds that fail to fetch are reported in the second return value and do
// not affect the rest of the run.
func (b *Builder) Build(now time.Time) (models.Report, []models.FeedError) {
	cutoff := now.AddDate(0, 0, -b.cfg.DaysBack)

	var items []models.ReportItem
	var feedErrs []models.FeedError

	for _, feedURL := range b.cfg.Feeds {
		parsed, err := b.fetcher.Fetch(feedURL)
		if err != nil {
			logger.Log.WithField("feed", feedURL).WithError(err).Warn("skipping feed")
			feedErrs = append(feedErrs, models.FeedError{URL: feedURL, Err: err})
			continue
		}
		for _, item := range parsed.Items {
			published := feed.PublishedAt(item, now)
			if published.Before(cutoff) {
				continue
			}
			if !feed.MatchesKeywords(item, b.cfg.Keywords) {
				continue
			}
			summary := item.Description
			if summary == "" {
				summary = item.Content
			}
			items = append(items, models.ReportItem{
				Title:     item.Title,
				Link:      item.Link,
				Summary:   Excerpt(summary),
				Published: published,
			})
		}
	}

	// Stable sort keeps feed order, then entry order, for equal timestamps.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})

	seen := make(map[string]struct{}, len(items))
	unique := make([]models.ReportItem, 0, len(items))
	for _, it := range items {
		key := it.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, it)
		if len(unique) >= b.cfg.MaxItems {
			break
		}
	}

	return models.Report{
		Title:       b.cfg.ReportTitle,
		GeneratedAt: now,
		Keywords:    b.cfg.Keywords,
		Items:       unique,
	}, feedErrs
}
