package usajobs

import (
	"encoding/json"
	"strings"

	"github.com/dpatel512/jobdeck/internal/model"
)

// Defaults substituted when a descriptor field is absent. Only a missing
// title drops the record; every other field degrades to one of these.
const (
	defaultLocation       = "N/A"
	defaultSummary        = "No summary available."
	defaultQualifications = "No specific qualifications summary provided in the posting."
	defaultPayInterval    = "per year"
	noURLSentinel         = "#"
)

// searchResponse is the top-level USAJobs Search API response.
type searchResponse struct {
	SearchResult struct {
		SearchResultItems []searchResultItem `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

type searchResultItem struct {
	MatchedObjectDescriptor descriptor `json:"MatchedObjectDescriptor"`
}

// descriptor is the raw nested structure describing one posting.
type descriptor struct {
	PositionTitle           string         `json:"PositionTitle"`
	PositionLocationDisplay string         `json:"PositionLocationDisplay"`
	PositionURI             string         `json:"PositionURI"`
	QualificationSummary    string         `json:"QualificationSummary"`
	PositionRemuneration    []remuneration `json:"PositionRemuneration"`
	UserArea                struct {
		Details struct {
			JobSummary           string `json:"JobSummary"`
			QualificationSummary string `json:"QualificationSummary"`
		} `json:"Details"`
	} `json:"UserArea"`
}

// remuneration bounds arrive as strings or numbers depending on the posting;
// flexString accepts both.
type remuneration struct {
	MinimumRange     flexString `json:"MinimumRange"`
	MaximumRange     flexString `json:"MaximumRange"`
	RateIntervalCode string     `json:"RateIntervalCode"`
}

// flexString decodes a JSON string or number into its literal text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// normalize turns one raw descriptor into a JobRecord. Returns ok=false when
// the descriptor lacks a usable title; every other missing field is defaulted
// so normalization itself never fails.
func normalize(d descriptor) (model.JobRecord, bool) {
	title := strings.TrimSpace(d.PositionTitle)
	if title == "" {
		return model.JobRecord{}, false
	}

	rec := model.JobRecord{
		Title:       title,
		Location:    defaultLocation,
		Summary:     defaultSummary,
		PayInterval: defaultPayInterval,
		URL:         noURLSentinel,
	}

	if d.PositionLocationDisplay != "" {
		rec.Location = d.PositionLocationDisplay
	}
	if d.UserArea.Details.JobSummary != "" {
		rec.Summary = d.UserArea.Details.JobSummary
	}

	switch {
	case d.QualificationSummary != "":
		rec.Qualifications = d.QualificationSummary
	case d.UserArea.Details.QualificationSummary != "":
		rec.Qualifications = d.UserArea.Details.QualificationSummary
	default:
		rec.Qualifications = defaultQualifications
	}

	if len(d.PositionRemuneration) > 0 {
		r := d.PositionRemuneration[0]
		rec.SalaryMin = string(r.MinimumRange)
		rec.SalaryMax = string(r.MaximumRange)
		if r.RateIntervalCode != "" {
			rec.PayInterval = r.RateIntervalCode
		}
	}

	if d.PositionURI != "" {
		rec.URL = d.PositionURI
	}

	return rec, true
}
