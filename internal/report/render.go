package report

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/thomaskoefod/newsbrief/pkg/models"
)

//go:embed templates
var templateFS embed.FS

var tmplFuncs = template.FuncMap{
	"rfc3339": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
	"join": strings.Join,
}

var reportTmpl = template.Must(
	template.New("report.html").Funcs(tmplFuncs).ParseFS(templateFS, "templates/report.html"))

// Render produces the self-contained HTML digest page. Titles and summaries
// are third-party text; html/template escapes them on the way in.
func Render(rep models.Report) (string, error) {
	var buf strings.Builder
	if err := reportTmpl.Execute(&buf, rep); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return buf.String(), nil
}

// ShortSummary is the compact text form posted to the chat webhook: the
// report title, a blank line, then up to limit "- title (link)" lines.
func ShortSummary(rep models.Report, limit int) string {
	var sb strings.Builder
	sb.WriteString(rep.Title)
	sb.WriteString("\n")
	for i, it := range rep.Items {
		if i >= limit {
			break
		}
		sb.WriteString(fmt.Sprintf("\n- %s (%s)", it.Title, it.Link))
	}
	return sb.String()
}
