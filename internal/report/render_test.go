package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thomaskoefod/newsbrief/internal/report"
	"github.com/thomaskoefod/newsbrief/pkg/models"
)

func sampleReport(items ...models.ReportItem) models.Report {
	return models.Report{
		Title:       "Test Brief",
		GeneratedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
		Keywords:    []string{"solar", "battery"},
		Items:       items,
	}
}

func TestRender_Header(t *testing.T) {
	html, err := report.Render(sampleReport())
	require.NoError(t, err)
	require.Contains(t, html, "<title>Test Brief</title>")
	require.Contains(t, html, "Report generated: 2024-06-10T12:00:00Z")
	require.Contains(t, html, "Keywords: solar, battery")
}

func TestRender_EmptyReport(t *testing.T) {
	html, err := report.Render(sampleReport())
	require.NoError(t, err)
	require.Contains(t, html, "No relevant items found.")
	require.NotContains(t, html, `class="item"`)
}

func TestRender_Items(t *testing.T) {
	html, err := report.Render(sampleReport(models.ReportItem{
		Title:     "Solar park opens",
		Link:      "https://example.com/solar",
		Summary:   "A new solar park",
		Published: time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)
	require.Contains(t, html, `<a href="https://example.com/solar" target="_blank">Solar park opens</a>`)
	require.Contains(t, html, "Published: 2024-06-09T08:00:00Z")
	require.Contains(t, html, "A new solar park")
	require.NotContains(t, html, "No relevant items found.")
}

func TestRender_EscapesThirdPartyText(t *testing.T) {
	html, err := report.Render(sampleReport(models.ReportItem{
		Title:     `<script>alert("x")</script>`,
		Link:      "https://example.com/x",
		Summary:   `1 < 2 & 3 > 2`,
		Published: time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)
	require.NotContains(t, html, "<script>alert")
	require.Contains(t, html, "&lt;script&gt;")
}

func TestShortSummary(t *testing.T) {
	items := make([]models.ReportItem, 7)
	for i := range items {
		items[i] = models.ReportItem{Title: "Item", Link: "https://x/a"}
	}
	text := report.ShortSummary(sampleReport(items...), 5)

	require.True(t, strings.HasPrefix(text, "Test Brief\n\n"))
	require.Equal(t, 5, strings.Count(text, "- Item (https://x/a)"))
}
