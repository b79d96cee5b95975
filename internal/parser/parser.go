// Package parser implements the resume extraction pipeline: format-specific
// text extraction, entity annotation, and a bank of independent field
// extractors fanned out over the same document and merged into one record.
package parser

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adityakaushiik/CandidateManagement/internal/annotate"
	"github.com/adityakaushiik/CandidateManagement/internal/docstore"
	"github.com/adityakaushiik/CandidateManagement/internal/extract"
	"github.com/adityakaushiik/CandidateManagement/internal/shared/metrics"
	"github.com/adityakaushiik/CandidateManagement/internal/shared/telemetry"
)

// Input identifies one document to parse: either a filesystem path, or raw
// bytes with the original filename (whose extension drives format dispatch).
type Input struct {
	Path     string
	Filename string
	Content  []byte
}

// Parser runs the extraction pipeline. The annotator is a long-lived handle;
// construct the Parser once and reuse it across documents.
type Parser struct {
	annotator annotate.Annotator
	store     *docstore.Store
	vocab     Vocabulary
}

// New builds a Parser around the given annotator and temp-file store.
func New(annotator annotate.Annotator, store *docstore.Store) *Parser {
	return &Parser{
		annotator: annotator,
		store:     store,
		vocab:     DefaultVocabulary(),
	}
}

// WithVocabulary replaces the default extraction vocabulary.
func (p *Parser) WithVocabulary(v Vocabulary) *Parser {
	p.vocab = v
	return p
}

// Parse extracts a structured record from one resume document. Its contract
// is total: it never panics and never returns an error. Unreadable input,
// backend failures, and unexpected internal failures all yield the all-null
// empty record. Any temporary file created for byte input is released before
// Parse returns, on every path.
func (p *Parser) Parse(ctx context.Context, in Input) (result ParsedResume) {
	metrics.IncParseStarted()
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("resume parse panic", map[string]any{"panic": fmt.Sprint(r)})
			result = emptyResult()
			metrics.IncParseEmpty()
		}
		metrics.IncParseCompleted()
		metrics.ObserveParseDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	path := in.Path
	if path == "" {
		stored, err := p.store.Save(in.Filename, in.Content)
		if err != nil {
			telemetry.Warn("store upload", map[string]any{"filename": in.Filename, "err": err.Error()})
			metrics.IncParseEmpty()
			return emptyResult()
		}
		defer p.store.Release(stored)
		path = stored
	}

	text := extract.Text(path)
	if !hasText(text) {
		metrics.IncParseEmpty()
		return emptyResult()
	}

	spans := p.annotator.Annotate(text)
	return p.extractAll(ctx, path, text, spans)
}

// extractAll fans the field extractors and the page counter out over the
// immutable (text, spans) pair and assembles the record from their outputs.
// Each task writes a distinct field, so no locking is needed; each is wrapped
// in its own failure boundary so one bad heuristic cannot take down the rest.
func (p *Parser) extractAll(ctx context.Context, path, text string, spans []annotate.Span) ParsedResume {
	var (
		name, email, phone, location *string
		degree, college, title       *string
		summary                      *string
		years                        *float64
		pages                        *int
		links                        *Links
		skills, companies            []string
		certs, languages, projects   []string
	)

	g, _ := errgroup.WithContext(ctx)
	run := func(field string, fn func()) {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					telemetry.Warn("field extractor panic", map[string]any{"field": field, "panic": fmt.Sprint(r)})
				}
			}()
			fn()
			return nil
		})
	}

	run("name", func() { name = extractName(text, spans) })
	run("email", func() { email = extractEmail(text) })
	run("phone", func() { phone = extractPhone(text) })
	run("skills", func() { skills = p.vocab.extractSkills(text) })
	run("education", func() { degree, college = p.vocab.extractEducation(text, spans) })
	run("companies", func() { companies = p.vocab.extractCompanies(spans) })
	run("experience_years", func() { years = extractExperienceYears(text) })
	run("designation", func() { title = p.vocab.extractDesignation(text) })
	run("links", func() { links = extractLinks(text) })
	run("location", func() { location = extractLocation(spans) })
	run("page_count", func() { pages = extract.CountPages(path) })
	run("certifications", func() { certs = extractCertifications(text) })
	run("languages", func() { languages = p.vocab.extractLanguages(text) })
	run("summary", func() { summary = extractSummary(text) })
	run("projects", func() { projects = extractProjects(text) })

	_ = g.Wait()

	return ParsedResume{
		Name:         name,
		Email:        email,
		MobileNumber: phone,
		Location:     location,
		Degree:       degree,
		CollegeName:  college,
		Designation:  title,
		Skills:       skills,
		CompanyNames: companies,
		// The legacy record aliases experience to the company list.
		Experience:      companies,
		TotalExperience: formatYears(years),
		NoOfPages:       pages,
		Links:           links,
		Certifications:  certs,
		Languages:       languages,
		Summary:         summary,
		Projects:        projects,
	}
}

// hasText reports whether extraction produced anything beyond whitespace.
func hasText(text string) bool {
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// formatYears renders the maximum experience figure as "{n} years", printing
// whole values without a decimal part.
func formatYears(years *float64) *string {
	if years == nil || *years == 0 {
		return nil
	}
	formatted := strconv.FormatFloat(*years, 'f', -1, 64) + " years"
	return &formatted
}
