package parser

import (
	"reflect"
	"testing"

	"github.com/adityakaushiik/CandidateManagement/internal/annotate"
)

func TestExtractExperienceYearsMaxWins(t *testing.T) {
	got := extractExperienceYears("3 years at one place, then 5.5 yrs somewhere else")
	if got == nil || *got != 5.5 {
		t.Fatalf("got %v, want 5.5", got)
	}
}

func TestExtractExperienceYearsVariants(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{name: "plus_suffix", text: "8+ years of experience", want: 8},
		{name: "yr_singular", text: "1 yr in support", want: 1},
		{name: "decimal", text: "2.5 years tenure", want: 2.5},
		{name: "uppercase", text: "10 YEARS building systems", want: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractExperienceYears(tc.text)
			if got == nil || *got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	if got := extractExperienceYears("no tenure mentioned"); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestFormatYears(t *testing.T) {
	whole := 5.0
	if got := formatYears(&whole); got == nil || *got != "5 years" {
		t.Fatalf("got %v, want 5 years", got)
	}
	fractional := 5.5
	if got := formatYears(&fractional); got == nil || *got != "5.5 years" {
		t.Fatalf("got %v, want 5.5 years", got)
	}
	zero := 0.0
	if got := formatYears(&zero); got != nil {
		t.Fatalf("zero years should format to nil, got %q", *got)
	}
	if got := formatYears(nil); got != nil {
		t.Fatalf("nil years should format to nil, got %q", *got)
	}
}

func TestExtractEducation(t *testing.T) {
	vocab := DefaultVocabulary()
	spans := []annotate.Span{
		{Text: "Acme Corp", Label: annotate.LabelOrg},
		{Text: "Indian Institute of Technology", Label: annotate.LabelOrg},
	}
	degree, college := vocab.extractEducation("Completed Master of Science in 2019", spans)
	if degree == nil || *degree != "Master of Science" {
		t.Fatalf("degree: got %s", strOrNil(degree))
	}
	if college == nil || *college != "Indian Institute of Technology" {
		t.Fatalf("college: got %s", strOrNil(college))
	}
}

func TestExtractEducationDegreePriority(t *testing.T) {
	vocab := DefaultVocabulary()
	// B.Tech outranks MBA because the pattern list is a priority ordering.
	degree, _ := vocab.extractEducation("MBA 2021, B.Tech 2017", nil)
	if degree == nil || *degree != "B.Tech" {
		t.Fatalf("degree: got %s, want B.Tech", strOrNil(degree))
	}
}

func TestExtractDesignation(t *testing.T) {
	vocab := DefaultVocabulary()

	got := vocab.extractDesignation("Position: Machine Learning Engineer\nat Acme")
	if got == nil || *got != "Machine Learning Engineer" {
		t.Fatalf("got %s, want Machine Learning Engineer", strOrNil(got))
	}

	got = vocab.extractDesignation("worked as a Backend Developer since 2020")
	if got == nil || *got != "Backend Developer" {
		t.Fatalf("got %s, want Backend Developer", strOrNil(got))
	}

	if got := vocab.extractDesignation("just some text"); got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}
}

func TestExtractCompanies(t *testing.T) {
	vocab := DefaultVocabulary()
	// Python is stop-listed, IBM is a single short word, the newline entry is
	// a tagging artifact, Stanford is education, the second Acme normalizes to
	// a duplicate, and Bangalore carries the wrong label.
	spans := []annotate.Span{
		{Text: "Python", Label: annotate.LabelOrg},
		{Text: "IBM", Label: annotate.LabelOrg},
		{Text: "Broken\nOrg", Label: annotate.LabelOrg},
		{Text: "Stanford University", Label: annotate.LabelOrg},
		{Text: "Acme Pvt Ltd", Label: annotate.LabelOrg},
		{Text: "Acme Pvt. Ltd.", Label: annotate.LabelOrg},
		{Text: "Globex Corporation", Label: annotate.LabelOrg},
		{Text: "Bangalore", Label: annotate.LabelLocation},
	}
	got := vocab.extractCompanies(spans)
	want := []string{"Acme Pvt Ltd", "Globex Corporation"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractCompaniesLegalMarkerAllowsSingleWord(t *testing.T) {
	vocab := DefaultVocabulary()
	spans := []annotate.Span{
		// Initech is a single word without a legal-entity marker.
		{Text: "Initech", Label: annotate.LabelOrg},
		{Text: "Cyberdyne Inc", Label: annotate.LabelOrg},
	}
	got := vocab.extractCompanies(spans)
	want := []string{"Cyberdyne Inc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
