package models

import (
	"strings"
	"time"
)

// ReportItem is one feed entry that survived the keyword and recency filters.
type ReportItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"published"`
}

// DedupeKey identifies an item for deduplication: the trimmed link, or the
// trimmed title when the entry has no link.
func (it ReportItem) DedupeKey() string {
	if key := strings.TrimSpace(it.Link); key != "" {
		return key
	}
	return strings.TrimSpace(it.Title)
}

// Report is the assembled digest, newest item first.
type Report struct {
	Title       string       `json:"title"`
	GeneratedAt time.Time    `json:"generated_at"`
	Keywords    []string     `json:"keywords"`
	Items       []ReportItem `json:"items"`
}

// FeedError records a feed that could not be fetched or parsed. The run
// continues without it.
type FeedError struct {
	URL string
	Err error
}

func (e FeedError) Error() string {
	return "feed " + e.URL + ": " + e.Err.Error()
}

func (e FeedError) Unwrap() error {
	return e.Err
}
