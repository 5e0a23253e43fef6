package model

import "context"

// JobRecord is the canonical representation of one job posting, normalized
// from the raw USAJobs search response.
type JobRecord struct {
	Title          string // required; records without one are dropped
	Location       string // "N/A" when absent
	Summary        string // from the nested details block
	Qualifications string // QualificationSummary, falling back to details
	SalaryMin      string // raw remuneration bound, "" when absent
	SalaryMax      string
	PayInterval    string // e.g. "Per Year"
	URL            string // "#" means no link
}

// HasURL reports whether the record carries a real posting link rather than
// the "#" sentinel.
func (j JobRecord) HasURL() bool {
	return j.URL != "" && j.URL != "#"
}

// JobSearcher queries the upstream job-search API and returns normalized
// records in response order.
type JobSearcher interface {
	Search(ctx context.Context, keyword string, resultsPerPage int) ([]JobRecord, error)
}

// Generator sends a prompt to the local text-generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}
