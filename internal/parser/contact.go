package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/adityakaushiik/CandidateManagement/internal/annotate"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePatterns are a fixed priority ordering: international formats,
	// then US formats, then a bare 10-digit run, then any long digit run.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\+?\d{10,}`),
	}
	nonDigitPattern = regexp.MustCompile(`\D`)

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	urlPattern      = regexp.MustCompile(`(?i)https?://[\w.-]+\.\w{2,}(?:/[\w.-]*)*`)
)

// extractName returns the first PERSON entity, falling back to the first
// non-empty line when it looks like a 2-4 word capitalized name.
func extractName(text string, spans []annotate.Span) *string {
	for _, span := range spans {
		if span.Label == annotate.LabelPerson {
			name := strings.TrimSpace(span.Text)
			if name != "" {
				return &name
			}
		}
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return nil
	}
	firstLine := strings.TrimSpace(lines[0])
	words := strings.Fields(firstLine)
	if len(words) < 2 || len(words) > 4 {
		return nil
	}
	for _, w := range words {
		r := []rune(w)
		if len(r) > 0 && !unicode.IsUpper(r[0]) {
			return nil
		}
	}
	return &firstLine
}

func extractEmail(text string) *string {
	match := emailPattern.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// extractPhone tries the phone patterns in priority order and normalizes the
// first match to its digits, keeping a leading + and prepending one when the
// digit count indicates an international number.
func extractPhone(text string) *string {
	for _, pattern := range phonePatterns {
		match := strings.TrimSpace(pattern.FindString(text))
		if match == "" {
			continue
		}
		digits := nonDigitPattern.ReplaceAllString(match, "")
		phone := digits
		if strings.HasPrefix(match, "+") || len(digits) > 10 {
			phone = "+" + digits
		}
		return &phone
	}
	return nil
}

// extractLinks pulls LinkedIn and GitHub profile URLs plus any other web
// links; the first non-profile URL becomes the portfolio. Returns nil when
// nothing was found.
func extractLinks(text string) *Links {
	links := Links{}

	if m := linkedinPattern.FindString(text); m != "" {
		links.LinkedIn = &m
	}
	if m := githubPattern.FindString(text); m != "" {
		links.GitHub = &m
	}

	for _, url := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}
		if links.Portfolio == nil {
			u := url
			links.Portfolio = &u
			continue
		}
		links.Other = append(links.Other, url)
	}

	if links.LinkedIn == nil && links.GitHub == nil && links.Portfolio == nil {
		return nil
	}
	return &links
}

// extractLocation returns the first location entity after dropping remote
// markers and case-insensitive duplicates.
func extractLocation(spans []annotate.Span) *string {
	seen := make(map[string]struct{})
	for _, span := range spans {
		if span.Label != annotate.LabelLocation {
			continue
		}
		loc := strings.TrimSpace(span.Text)
		lower := strings.ToLower(loc)
		if lower == "remote" || lower == "online" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		return &loc
	}
	return nil
}
