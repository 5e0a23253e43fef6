// Package render formats pipeline output as markdown for whichever front end
// is displaying it. No state; plain string building.
package render

import (
	"fmt"
	"strings"

	"github.com/dpatel512/jobdeck/internal/model"
	"github.com/dpatel512/jobdeck/internal/prompt"
)

// Listing renders the loaded postings as a numbered markdown list.
func Listing(records []model.JobRecord) string {
	var b strings.Builder
	b.WriteString("# Top Jobs\n\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, rec.Title)
		fmt.Fprintf(&b, "- **Location:** %s\n", rec.Location)
		fmt.Fprintf(&b, "- %s\n", rec.Summary)
		if rec.HasURL() {
			fmt.Fprintf(&b, "- [View Posting](%s)\n", rec.URL)
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

// Analysis renders a generation result for one posting, with a link back to
// the posting when a real URL is present.
func Analysis(rec model.JobRecord, kind prompt.Kind, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis of: %s\n\n", rec.Title)
	fmt.Fprintf(&b, "## %s\n\n%s\n", kindHeading(kind), text)
	if rec.HasURL() {
		fmt.Fprintf(&b, "\n[View Full Job Posting](%s)\n", rec.URL)
	}
	return b.String()
}

// Recommendations renders the skills-based role suggestions.
func Recommendations(text string) string {
	return "# Suggested Roles\n\n" + text + "\n"
}

// ResumeTips renders resume advice for one title.
func ResumeTips(title, text string) string {
	return fmt.Sprintf("# Resume Tips for: %s\n\n%s\n", title, text)
}

// Error renders a failure as a short user-facing message line.
func Error(msg string) string {
	return "⚠ " + msg
}

func kindHeading(kind prompt.Kind) string {
	switch kind {
	case prompt.KindSummary:
		return "Summary Analysis"
	case prompt.KindQualifications:
		return "Qualifications Analysis"
	case prompt.KindSalary:
		return "Salary Analysis"
	default:
		return "Analysis"
	}
}
