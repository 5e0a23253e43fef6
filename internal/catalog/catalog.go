// Package catalog holds the job records loaded by the most recent search,
// scoped to one interactive session. Nothing here is persisted.
package catalog

import (
	"sync"

	"github.com/dpatel512/jobdeck/internal/model"
)

// FallbackQualifications is returned by QualificationsFor when a title was
// never loaded. Resume tips still proceed with it rather than failing.
const FallbackQualifications = "No qualifications/summary available."

// Catalog is the ordered batch of records from the last successful search
// plus a title index for selection. Each successful search replaces the
// whole batch; batches are never merged. The mutex is needed because the TUI
// loads postings from a background command while the view reads titles.
type Catalog struct {
	mu      sync.Mutex
	records []model.JobRecord
	byTitle map[string]model.JobRecord
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byTitle: make(map[string]model.JobRecord)}
}

// Replace swaps in a new batch wholesale and rebuilds the title index from
// scratch. When the batch contains duplicate titles, the first occurrence
// wins and later ones are shadowed in title lookup; this mirrors upstream
// behavior and is deliberate.
func (c *Catalog) Replace(records []model.JobRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = make([]model.JobRecord, len(records))
	copy(c.records, records)

	c.byTitle = make(map[string]model.JobRecord, len(records))
	for _, rec := range records {
		if _, exists := c.byTitle[rec.Title]; !exists {
			c.byTitle[rec.Title] = rec
		}
	}
}

// Clear empties the catalog. Called after a failed search so stale results
// are never analyzable.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.byTitle = make(map[string]model.JobRecord)
}

// LookupByTitle returns the first-loaded record with exactly this title.
func (c *Catalog) LookupByTitle(title string) (model.JobRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.byTitle[title]
	return rec, ok
}

// Titles returns the loaded titles in response order, duplicates included.
func (c *Catalog) Titles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	titles := make([]string, len(c.records))
	for i, rec := range c.records {
		titles[i] = rec.Title
	}
	return titles
}

// QualificationsFor returns the qualifications text indexed under title, or
// FallbackQualifications when the title was never loaded.
func (c *Catalog) QualificationsFor(title string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.byTitle[title]; ok {
		return rec.Qualifications
	}
	return FallbackQualifications
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
