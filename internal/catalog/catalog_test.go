package catalog

import (
	"testing"

	"github.com/dpatel512/jobdeck/internal/model"
)

func rec(title string) model.JobRecord {
	return model.JobRecord{Title: title, Qualifications: "quals for " + title}
}

func TestReplace_IsWholesale(t *testing.T) {
	c := New()
	c.Replace([]model.JobRecord{rec("Analyst"), rec("Auditor")})
	c.Replace([]model.JobRecord{rec("Clerk")})

	if _, ok := c.LookupByTitle("Analyst"); ok {
		t.Error("first batch title must not survive a replace")
	}
	if _, ok := c.LookupByTitle("Auditor"); ok {
		t.Error("first batch title must not survive a replace")
	}
	if _, ok := c.LookupByTitle("Clerk"); !ok {
		t.Error("second batch title must be addressable")
	}
	if got := c.Len(); got != 1 {
		t.Errorf("expected 1 record, got %d", got)
	}
}

func TestLookupByTitle_DuplicatesShadowed(t *testing.T) {
	first := model.JobRecord{Title: "Analyst", Location: "DC"}
	second := model.JobRecord{Title: "Analyst", Location: "NYC"}

	c := New()
	c.Replace([]model.JobRecord{first, second})

	got, ok := c.LookupByTitle("Analyst")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Location != "DC" {
		t.Errorf("expected first occurrence to win, got location %q", got.Location)
	}

	// Both records remain in the ordered sequence even though only the
	// first is addressable by title.
	if titles := c.Titles(); len(titles) != 2 {
		t.Errorf("expected 2 titles, got %d", len(titles))
	}
}

func TestLookupByTitle_EmptyAndMissing(t *testing.T) {
	c := New()
	if _, ok := c.LookupByTitle("anything"); ok {
		t.Error("empty catalog must not match")
	}

	c.Replace([]model.JobRecord{rec("Analyst")})
	if _, ok := c.LookupByTitle("analyst"); ok {
		t.Error("lookup is exact, not case-insensitive")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Replace([]model.JobRecord{rec("Analyst")})
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d records", c.Len())
	}
	if _, ok := c.LookupByTitle("Analyst"); ok {
		t.Error("cleared catalog must not match")
	}
	if titles := c.Titles(); len(titles) != 0 {
		t.Errorf("expected no titles, got %v", titles)
	}
}

func TestTitles_PreserveOrder(t *testing.T) {
	c := New()
	c.Replace([]model.JobRecord{rec("C"), rec("A"), rec("B")})

	titles := c.Titles()
	want := []string{"C", "A", "B"}
	for i, w := range want {
		if titles[i] != w {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], w)
		}
	}
}

func TestQualificationsFor(t *testing.T) {
	c := New()
	c.Replace([]model.JobRecord{rec("Analyst")})

	if got := c.QualificationsFor("Analyst"); got != "quals for Analyst" {
		t.Errorf("unexpected qualifications %q", got)
	}
	if got := c.QualificationsFor("Never Loaded"); got != FallbackQualifications {
		t.Errorf("expected fallback text, got %q", got)
	}
}
