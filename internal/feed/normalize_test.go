package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestPublishedAt_Priority(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	published := time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC)

	item := gofeed.Item{PublishedParsed: &published, UpdatedParsed: &updated}
	if got := PublishedAt(&item, now); !got.Equal(published) {
		t.Errorf("PublishedAt() = %v, want published %v", got, published)
	}

	item = gofeed.Item{UpdatedParsed: &updated}
	if got := PublishedAt(&item, now); !got.Equal(updated) {
		t.Errorf("PublishedAt() = %v, want updated %v", got, updated)
	}
}

func TestPublishedAt_RawFallback(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "rfc1123z",
			raw:  "Thu, 30 May 2024 08:00:00 +0200",
			want: time.Date(2024, 5, 30, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "plain date treated as utc",
			raw:  "2024-05-30",
			want: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := gofeed.Item{Published: tt.raw}
			if got := PublishedAt(&item, now); !got.Equal(tt.want) {
				t.Errorf("PublishedAt(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPublishedAt_DefaultsToNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, item := range []gofeed.Item{
		{},
		{Published: "not a date at all"},
	} {
		if got := PublishedAt(&item, now); !got.Equal(now) {
			t.Errorf("PublishedAt(%+v) = %v, want now %v", item, got, now)
		}
	}
}
