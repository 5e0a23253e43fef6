// Package prompt renders the fixed request templates sent to the generation
// backend. Rendering is pure: identical input yields byte-identical output.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dpatel512/jobdeck/internal/model"
)

//go:embed templates/*.md
var templateFS embed.FS

// Kind selects which analysis template to render.
type Kind string

const (
	KindSummary        Kind = "summary"
	KindQualifications Kind = "qualifications"
	KindSalary         Kind = "salary"
	KindSkills         Kind = "skills"
	KindResume         Kind = "resume"
)

// JobKinds are the kinds that analyze a selected posting, in menu order.
var JobKinds = []Kind{KindSummary, KindQualifications, KindSalary}

// ParseKind validates a kind name coming from a flag or UI control.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSummary, KindQualifications, KindSalary, KindSkills, KindResume:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, model.ErrInvalidAnalysisKind)
}

// Input carries the fields the templates draw from. Job kinds use Job;
// KindSkills uses Skills; KindResume uses Job.Title and Job.Qualifications.
type Input struct {
	Job    model.JobRecord
	Skills string
}

// templates are parsed once at package init so a broken template fails at
// startup, not on first use.
var templates = map[Kind]*template.Template{
	KindSummary:        mustParse("summary"),
	KindQualifications: mustParse("qualifications"),
	KindSalary:         mustParse("salary"),
	KindSkills:         mustParse("skills"),
	KindResume:         mustParse("resume"),
}

func mustParse(name string) *template.Template {
	raw, err := templateFS.ReadFile("templates/" + name + ".md")
	if err != nil {
		panic(fmt.Sprintf("prompt template %s: %v", name, err))
	}
	return template.Must(template.New(name).Parse(string(raw)))
}

// Build renders the template for kind from in. Unknown kinds fail with
// model.ErrInvalidAnalysisKind before anything else happens.
func Build(kind Kind, in Input) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("%q: %w", kind, model.ErrInvalidAnalysisKind)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", kind, err)
	}
	return buf.String(), nil
}

// Temperature returns the sampling temperature used with kind. Zero means
// "let the backend pick"; the generation client omits the field then.
func Temperature(kind Kind) float64 {
	switch kind {
	case KindSkills:
		return 0.4
	case KindResume:
		return 0
	default:
		return 0.3
	}
}
