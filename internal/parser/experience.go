package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adityakaushiik/CandidateManagement/internal/annotate"
)

var (
	// experiencePatterns cover "5 years", "5+ years", "5.5 yrs", "5 yr".
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+\.?\d*)\+?\s*years?`),
		regexp.MustCompile(`(\d+\.?\d*)\+?\s*yrs?`),
	}

	companySuffixPattern = regexp.MustCompile(`(?i)\s*(pvt\.?|ltd\.?|inc\.?|llc|limited|corp\.?)\s*`)
	punctuationPattern   = regexp.MustCompile(`[^\w\s]`)
)

// extractExperienceYears collects every "<n> years" / "<n> yrs" mention and
// returns the maximum, or nil when none occurs.
func extractExperienceYears(text string) *float64 {
	textLower := strings.ToLower(text)
	var maxYears float64
	found := false

	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(textLower, -1) {
			years, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if !found || years > maxYears {
				maxYears = years
			}
			found = true
		}
	}

	if !found {
		return nil
	}
	return &maxYears
}

// extractEducation scans the degree patterns in priority order and picks the
// first ORG entity naming an educational institution.
func (v Vocabulary) extractEducation(text string, spans []annotate.Span) (degree, college *string) {
	for _, pattern := range v.DegreePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			d := m[1]
			degree = &d
			break
		}
	}

	for _, span := range spans {
		if span.Label != annotate.LabelOrg {
			continue
		}
		lower := strings.ToLower(span.Text)
		for _, keyword := range v.EducationKeywords {
			if strings.Contains(lower, keyword) {
				c := strings.TrimSpace(span.Text)
				college = &c
				return degree, college
			}
		}
	}
	return degree, college
}

// extractDesignation returns the first title-pattern match of plausible
// length (5-99 characters after whitespace normalization).
func (v Vocabulary) extractDesignation(text string) *string {
	for _, pattern := range v.TitlePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		designation := strings.TrimSpace(m[1])
		designation = strings.Join(strings.Fields(designation), " ")
		if len(designation) >= 5 && len(designation) < 100 {
			return &designation
		}
	}
	return nil
}

// extractCompanies filters ORG entities down to plausible employers. The
// dedup key is a normalized form with legal-entity suffixes and punctuation
// stripped; the output keeps the first-seen original text.
func (v Vocabulary) extractCompanies(spans []annotate.Span) []string {
	var companies []string
	seen := make(map[string]struct{})

	for _, span := range spans {
		if span.Label != annotate.LabelOrg {
			continue
		}
		entText := strings.TrimSpace(span.Text)
		entLower := strings.ToLower(entText)

		if _, stopped := v.CompanyStoplist[entLower]; stopped {
			continue
		}
		words := strings.Fields(entText)
		if len(words) == 1 && len(entText) < 4 {
			continue
		}
		if strings.Contains(entText, "\n") {
			continue
		}

		likelyCompany := len(words) >= 2
		for _, marker := range []string{"pvt", "ltd", "inc", "corp", "llc", "limited", "company"} {
			if strings.Contains(entLower, marker) {
				likelyCompany = true
				break
			}
		}
		if !likelyCompany {
			continue
		}

		isEducation := false
		for _, keyword := range v.EducationKeywords {
			if strings.Contains(entLower, keyword) {
				isEducation = true
				break
			}
		}
		if isEducation {
			continue
		}

		normalized := companySuffixPattern.ReplaceAllString(entLower, "")
		normalized = strings.TrimSpace(punctuationPattern.ReplaceAllString(normalized, ""))
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		companies = append(companies, entText)
	}
	return companies
}
