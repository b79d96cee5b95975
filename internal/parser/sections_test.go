package parser

import (
	"strings"
	"testing"
)

func TestExtractSummary(t *testing.T) {
	text := "Professional Summary: Backend engineer focused on data pipelines,\nobservability and developer tooling across several product teams.\n\nExperience\n"
	got := extractSummary(text)
	if got == nil {
		t.Fatal("expected summary")
	}
	if strings.Contains(*got, "\n") {
		t.Fatalf("summary whitespace not normalized: %q", *got)
	}
	if !strings.HasPrefix(*got, "Backend engineer focused") {
		t.Fatalf("unexpected summary: %q", *got)
	}
}

func TestExtractSummaryObjectiveFallback(t *testing.T) {
	text := "Career Objective: To build resilient distributed systems and mentor junior engineers along the way.\n\nSkills\n"
	got := extractSummary(text)
	if got == nil || !strings.HasPrefix(*got, "To build resilient") {
		t.Fatalf("got %s", strOrNil(got))
	}
}

func TestExtractSummaryTooShort(t *testing.T) {
	if got := extractSummary("Summary: short.\n\nNext\n"); got != nil {
		t.Fatalf("expected nil for sub-50-char body, got %q", *got)
	}
}

func TestExtractSummaryBounded(t *testing.T) {
	body := strings.Repeat("engineer builds systems ", 18) // ~430 chars
	got := extractSummary("Summary: " + body + "\n\nNext\n")
	if got == nil {
		t.Fatal("expected summary")
	}
	if len(*got) > summaryMaxLen {
		t.Fatalf("summary length %d exceeds %d", len(*got), summaryMaxLen)
	}
}

func TestExtractProjects(t *testing.T) {
	text := "Projects:\n" +
		"- Built a resume parsing service with concurrent field extraction and temp-file lifecycle management\n" +
		"- Implemented a document search index covering PDF, DOCX and plain text ingestion pipelines\n" +
		"- x\n" +
		"- Data pipeline orchestration tooling with retry policies and structured logging for every stage\n" +
		"\n\nEducation\n"
	got := extractProjects(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 projects (short entry dropped), got %d: %v", len(got), got)
	}
	for _, p := range got {
		if len(p) > projectMaxLen {
			t.Fatalf("project entry exceeds %d chars: %q", projectMaxLen, p)
		}
		if len(p) <= projectMinLen {
			t.Fatalf("short entry kept: %q", p)
		}
	}
}

func TestExtractProjectsNone(t *testing.T) {
	if got := extractProjects("no relevant section here"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestExtractCertifications(t *testing.T) {
	text := "AWS Certified Solutions Architect - Associate\n" +
		"Certified Kubernetes Administrator (CKA)\n" +
		"Certified Kubernetes Administrator (CKA)\n"
	got := extractCertifications(text)
	if len(got) == 0 {
		t.Fatal("expected certifications")
	}
	seen := make(map[string]int)
	for _, c := range got {
		seen[c]++
		if seen[c] > 1 {
			t.Fatalf("duplicate certification kept: %q", c)
		}
	}
	found := false
	for _, c := range got {
		if strings.Contains(c, "Kubernetes Administrator") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing kubernetes cert in %v", got)
	}
}

func TestExtractCertificationsCap(t *testing.T) {
	var b strings.Builder
	for _, name := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"} {
		b.WriteString("Certified " + name + " Practitioner Level One\n")
	}
	got := extractCertifications(b.String())
	if len(got) != maxCertifications {
		t.Fatalf("expected cap of %d, got %d: %v", maxCertifications, len(got), got)
	}
}
