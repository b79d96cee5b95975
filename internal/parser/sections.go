package parser

import (
	"regexp"
	"strings"
)

const (
	summaryMaxLen     = 500
	projectMaxLen     = 200
	projectMinLen     = 20
	maxProjects       = 5
	maxCertifications = 5
	certMinLen        = 5
)

var (
	// summaryPatterns are tried in order; the first section header that
	// captures a 50-500 character body wins. The body ends at a blank line
	// or a new capitalized line.
	summaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:professional\s+)?summary[\s:]+(.{50,500}?)(?:\n\n|\n[A-Z])`),
		regexp.MustCompile(`(?is)(?:career\s+)?objective[\s:]+(.{50,500}?)(?:\n\n|\n[A-Z])`),
		regexp.MustCompile(`(?is)(?:about\s+me|profile)[\s:]+(.{50,500}?)(?:\n\n|\n[A-Z])`),
	}

	projectSectionPattern = regexp.MustCompile(`(?is)(?:projects?|personal\s+projects?)[\s:]+(.{100,1000}?)(?:\n\n[A-Z]|$)`)
	projectSplitPattern   = regexp.MustCompile(`\n\s*[•\-*]|\n\n`)

	certPhrasePattern = regexp.MustCompile(`(?i)(?:certified|certificate|certification)[\s:]+([\w\s\-().]+?)(?:\n|$|\|)`)
	certVendorPattern = regexp.MustCompile(`(?i)(?:AWS|Azure|Google Cloud|GCP|Oracle|Microsoft|Cisco|CompTIA|PMP)\s+(?:Certified\s+)?[\w\s-]+(?:Engineer|Developer|Architect|Associate|Professional)`)
)

// extractSummary captures the professional summary or objective section,
// whitespace-normalized and truncated to 500 characters.
func extractSummary(text string) *string {
	for _, pattern := range summaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		summary := strings.Join(strings.Fields(m[1]), " ")
		if len(summary) > summaryMaxLen {
			summary = summary[:summaryMaxLen]
		}
		return &summary
	}
	return nil
}

// extractProjects captures the projects section body and splits it on bullet
// markers or blank lines, keeping up to five entries of useful length.
func extractProjects(text string) []string {
	m := projectSectionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var projects []string
	entries := projectSplitPattern.Split(m[1], -1)
	for _, entry := range entries {
		if len(projects) == maxProjects {
			break
		}
		entry = strings.TrimSpace(entry)
		if len(entry) <= projectMinLen {
			continue
		}
		if len(entry) > projectMaxLen {
			entry = entry[:projectMaxLen]
		}
		projects = append(projects, entry)
	}
	return projects
}

// extractCertifications collects explicit "certified/certificate" phrases and
// vendor-plus-role titles, deduplicated by trimmed text and capped at five.
func extractCertifications(text string) []string {
	var raw []string
	for _, m := range certPhrasePattern.FindAllStringSubmatch(text, -1) {
		raw = append(raw, m[1])
	}
	raw = append(raw, certVendorPattern.FindAllString(text, -1)...)

	var certs []string
	seen := make(map[string]struct{})
	for _, cert := range raw {
		cert = strings.TrimSpace(cert)
		if len(cert) <= certMinLen {
			continue
		}
		if _, dup := seen[cert]; dup {
			continue
		}
		seen[cert] = struct{}{}
		certs = append(certs, cert)
	}
	if len(certs) > maxCertifications {
		certs = certs[:maxCertifications]
	}
	return certs
}
