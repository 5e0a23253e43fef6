package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/dpatel512/jobdeck/internal/model"
)

var sampleJob = model.JobRecord{
	Title:          "Financial Analyst",
	Location:       "Washington, DC",
	Summary:        "Analyze budgets and prepare reports.",
	Qualifications: "Three years of relevant experience.",
	SalaryMin:      "60000",
	SalaryMax:      "90000",
	PayInterval:    "Per Year",
	URL:            "https://www.usajobs.gov/job/123",
}

func TestBuild_Deterministic(t *testing.T) {
	for _, kind := range []Kind{KindSummary, KindQualifications, KindSalary, KindResume} {
		in := Input{Job: sampleJob}
		first, err := Build(kind, in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		second, err := Build(kind, in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if first != second {
			t.Errorf("%s: identical input must yield byte-identical prompts", kind)
		}
	}

	in := Input{Skills: "Python, Excel"}
	first, _ := Build(KindSkills, in)
	second, _ := Build(KindSkills, in)
	if first != second {
		t.Error("skills: identical input must yield byte-identical prompts")
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	out, err := Build(Kind("sentiment"), Input{Job: sampleJob})
	if !errors.Is(err, model.ErrInvalidAnalysisKind) {
		t.Fatalf("expected ErrInvalidAnalysisKind, got %v", err)
	}
	if out != "" {
		t.Errorf("no partial prompt may be constructed, got %q", out)
	}
}

func TestBuild_FieldsAppear(t *testing.T) {
	cases := map[Kind][]string{
		KindSummary:        {sampleJob.Title, sampleJob.Summary},
		KindQualifications: {sampleJob.Title, sampleJob.Summary, "Minimum qualifications"},
		KindSalary:         {sampleJob.Title, sampleJob.SalaryMin, sampleJob.SalaryMax, sampleJob.PayInterval},
		KindResume:         {sampleJob.Title, sampleJob.Qualifications},
	}
	for kind, wants := range cases {
		out, err := Build(kind, Input{Job: sampleJob})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		for _, want := range wants {
			if !strings.Contains(out, want) {
				t.Errorf("%s prompt missing %q", kind, want)
			}
		}
	}

	out, err := Build(KindSkills, Input{Skills: "Python, Excel, data analysis"})
	if err != nil {
		t.Fatalf("skills: unexpected error: %v", err)
	}
	if !strings.Contains(out, "Python, Excel, data analysis") {
		t.Error("skills prompt missing the skills text")
	}
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"summary", "qualifications", "salary", "skills", "resume"} {
		if _, err := ParseKind(valid); err != nil {
			t.Errorf("%s: unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseKind("vibes"); !errors.Is(err, model.ErrInvalidAnalysisKind) {
		t.Errorf("expected ErrInvalidAnalysisKind, got %v", err)
	}
}

func TestTemperature(t *testing.T) {
	if got := Temperature(KindSummary); got != 0.3 {
		t.Errorf("summary temperature = %v, want 0.3", got)
	}
	if got := Temperature(KindSkills); got != 0.4 {
		t.Errorf("skills temperature = %v, want 0.4", got)
	}
	if got := Temperature(KindResume); got != 0 {
		t.Errorf("resume temperature = %v, want 0 (backend default)", got)
	}
}
