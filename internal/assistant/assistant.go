// Package assistant ties the pipeline together: search → catalog → prompt →
// generation → rendered text. Every error from a component boundary is
// converted to a user-facing message here; nothing propagates to the UI raw.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dpatel512/jobdeck/internal/catalog"
	"github.com/dpatel512/jobdeck/internal/model"
	"github.com/dpatel512/jobdeck/internal/prompt"
	"github.com/dpatel512/jobdeck/internal/render"
)

// User-state messages produced by the orchestrator itself.
const (
	msgNoSelection  = "Please select a job to analyze."
	msgCatalogEmpty = "No job data loaded. Load postings first."
	msgNoSkills     = "Please enter some skills or interests."
	msgNoKeyword    = "Please enter a search keyword."
	msgMissingCreds = "API credentials are not configured. Set USAJOBS_USER_AGENT and USAJOBS_API_KEY."
	msgNoResults    = "No jobs found."
)

// SearchRecorder logs completed searches. Optional; may be nil.
type SearchRecorder interface {
	Record(keyword string, resultCount int) error
}

// Assistant orchestrates one interactive session. Actions are independent:
// each call produces exactly one rendered result and never retries.
type Assistant struct {
	searcher model.JobSearcher
	gen      model.Generator
	catalog  *catalog.Catalog
	recorder SearchRecorder
	logger   *slog.Logger
}

// New wires an assistant. recorder may be nil when search history is off.
func New(searcher model.JobSearcher, gen model.Generator, recorder SearchRecorder, logger *slog.Logger) *Assistant {
	return &Assistant{
		searcher: searcher,
		gen:      gen,
		catalog:  catalog.New(),
		recorder: recorder,
		logger:   logger,
	}
}

// Catalog exposes the session catalog to front ends that need the title list.
func (a *Assistant) Catalog() *catalog.Catalog {
	return a.catalog
}

// LoadPostings searches for keyword, installs the batch into the catalog and
// returns the rendered listing plus the titles for a selector widget. On any
// failure the catalog is cleared and the message describes the error.
func (a *Assistant) LoadPostings(ctx context.Context, keyword string, resultsPerPage int) (string, []string) {
	if strings.TrimSpace(keyword) == "" {
		return render.Error(msgNoKeyword), nil
	}

	records, err := a.searcher.Search(ctx, keyword, resultsPerPage)
	if err != nil {
		a.catalog.Clear()
		a.logger.Warn("search failed", "keyword", keyword, "error", err)
		return render.Error(searchErrorMessage(err)), nil
	}

	a.catalog.Replace(records)
	a.logger.Info("postings loaded", "keyword", keyword, "count", len(records))

	if a.recorder != nil {
		if err := a.recorder.Record(keyword, len(records)); err != nil {
			a.logger.Warn("recording search history failed", "error", err)
		}
	}

	return render.Listing(records), a.catalog.Titles()
}

// AnalyzeJob resolves title against the catalog, builds the prompt for kind
// and runs it through the generation backend.
func (a *Assistant) AnalyzeJob(ctx context.Context, title string, kind prompt.Kind) string {
	if title == "" {
		return render.Error(msgNoSelection)
	}
	if a.catalog.Len() == 0 {
		return render.Error(msgCatalogEmpty)
	}

	rec, ok := a.catalog.LookupByTitle(title)
	if !ok {
		return render.Error(fmt.Sprintf("Could not find the selected job: %s", title))
	}

	p, err := prompt.Build(kind, prompt.Input{Job: rec})
	if err != nil {
		return render.Error(fmt.Sprintf("Unsupported analysis type %q.", kind))
	}

	text, err := a.gen.Generate(ctx, p, prompt.Temperature(kind))
	if err != nil {
		a.logger.Warn("generation failed", "kind", kind, "error", err)
		return render.Error(fmt.Sprintf("Analysis failed: %v", err))
	}

	return render.Analysis(rec, kind, text)
}

// RecommendFromSkills suggests roles for free-text skills input.
func (a *Assistant) RecommendFromSkills(ctx context.Context, skills string) string {
	if strings.TrimSpace(skills) == "" {
		return render.Error(msgNoSkills)
	}

	p, err := prompt.Build(prompt.KindSkills, prompt.Input{Skills: skills})
	if err != nil {
		return render.Error(fmt.Sprintf("Unsupported analysis type %q.", prompt.KindSkills))
	}

	text, err := a.gen.Generate(ctx, p, prompt.Temperature(prompt.KindSkills))
	if err != nil {
		a.logger.Warn("generation failed", "kind", prompt.KindSkills, "error", err)
		return render.Error(fmt.Sprintf("Recommendation failed: %v", err))
	}

	return render.Recommendations(text)
}

// ResumeTips generates resume advice for title. A title that was never
// loaded falls back to placeholder qualifications text instead of failing,
// so tips still render for hand-typed titles.
func (a *Assistant) ResumeTips(ctx context.Context, title string) string {
	if title == "" {
		return render.Error(msgNoSelection)
	}

	in := prompt.Input{Job: model.JobRecord{
		Title:          title,
		Qualifications: a.catalog.QualificationsFor(title),
	}}

	p, err := prompt.Build(prompt.KindResume, in)
	if err != nil {
		return render.Error(fmt.Sprintf("Unsupported analysis type %q.", prompt.KindResume))
	}

	text, err := a.gen.Generate(ctx, p, prompt.Temperature(prompt.KindResume))
	if err != nil {
		a.logger.Warn("generation failed", "kind", prompt.KindResume, "error", err)
		return render.Error(fmt.Sprintf("Resume tips failed: %v", err))
	}

	return render.ResumeTips(title, text)
}

// searchErrorMessage maps the search error taxonomy onto user-facing text.
func searchErrorMessage(err error) string {
	var upstream *model.UpstreamError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return fmt.Sprintf("Invalid search input: %v", err)
	case errors.Is(err, model.ErrMissingCredentials):
		return msgMissingCreds
	case errors.Is(err, model.ErrNoResults):
		return msgNoResults
	case errors.As(err, &upstream):
		return fmt.Sprintf("Job search failed: %v", upstream)
	default:
		return fmt.Sprintf("Job search failed: %v", err)
	}
}
