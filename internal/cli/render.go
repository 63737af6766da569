package cli

import (
	"fmt"
	"strings"

	"github.com/sudsywork/sudsy/internal/model"
)

// RenderTemplate formats a checklist template for static terminal output,
// sections in template order with unchecked boxes.
func RenderTemplate(tmpl model.Template) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(tmpl.Tag.DisplayName() + " Checklist"))
	b.WriteString("\n")

	for _, section := range tmpl.Sections {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render(section.Label))
		b.WriteString("\n")
		for _, item := range section.Items {
			fmt.Fprintf(&b, "  [ ] %s\n", item)
		}
	}

	return b.String()
}

// RenderJobLine formats the one-line description of a job used in headers.
func RenderJobLine(job model.Job, tag model.ServiceTag) string {
	parts := make([]string, 0, 4)

	if !job.Date.IsZero() {
		parts = append(parts, job.Date.Format("Mon Jan 2"))
	}
	if tr := job.TimeRange(); tr != "" {
		parts = append(parts, tr)
	}
	if job.Client != "" {
		parts = append(parts, job.Client)
	}
	parts = append(parts, TagStyle.Render(tag.DisplayName()))

	return strings.Join(parts, "  ")
}
