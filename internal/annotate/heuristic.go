package annotate

import (
	"strings"
	"unicode"
)

// orgCues are tokens that strongly suggest an organization name.
var orgCues = map[string]struct{}{
	"university": {}, "college": {}, "institute": {}, "school": {},
	"technologies": {}, "solutions": {}, "systems": {},
	"labs": {}, "consulting": {}, "consultancy": {},
	"pvt": {}, "ltd": {}, "inc": {}, "inc.": {}, "corp": {}, "corp.": {},
	"llc": {}, "limited": {}, "company": {}, "group": {}, "services": {},
}

// knownPlaces is a small gazetteer good enough for resume headers. A real
// deployment swaps Heuristic for a handle onto a statistical model.
var knownPlaces = map[string]struct{}{
	"bangalore": {}, "bengaluru": {}, "mumbai": {}, "delhi": {}, "new delhi": {},
	"hyderabad": {}, "chennai": {}, "pune": {}, "noida": {}, "gurgaon": {},
	"kolkata": {}, "uttar pradesh": {}, "india": {}, "remote": {}, "online": {},
	"london": {}, "berlin": {}, "paris": {}, "dubai": {}, "singapore": {},
	"new york": {}, "san francisco": {}, "seattle": {}, "austin": {},
	"boston": {}, "chicago": {}, "toronto": {}, "sydney": {}, "tokyo": {},
	"usa": {}, "uk": {}, "canada": {}, "germany": {}, "australia": {},
}

// Heuristic is a dependency-free Annotator built from capitalization runs and
// keyword cues. It exists so the pipeline and CLI work standalone; accuracy is
// deliberately traded for zero setup cost.
type Heuristic struct{}

// NewHeuristic returns a rule-based annotator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Annotate scans the text for capitalized token runs and classifies each as
// person, organization, or location.
func (h *Heuristic) Annotate(text string) []Span {
	var spans []Span
	personFound := false

	lines := strings.Split(text, "\n")
	lineNo := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lineNo++
		for _, run := range capitalizedRuns(trimmed) {
			lower := strings.ToLower(run)
			switch {
			case isPlace(lower):
				spans = append(spans, Span{Text: run, Label: LabelLocation})
			case hasOrgCue(lower):
				spans = append(spans, Span{Text: run, Label: LabelOrg})
			case !personFound && lineNo <= 5 && looksLikeName(run):
				spans = append(spans, Span{Text: run, Label: LabelPerson})
				personFound = true
			case wordCount(run) >= 2:
				spans = append(spans, Span{Text: run, Label: LabelOrg})
			}
		}
	}
	return spans
}

// capitalizedRuns returns maximal sequences of tokens starting with an
// uppercase letter.
func capitalizedRuns(line string) []string {
	var runs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, tok := range strings.Fields(line) {
		clean := strings.Trim(tok, ",;|")
		r := []rune(clean)
		if len(r) > 0 && unicode.IsUpper(r[0]) {
			current = append(current, clean)
			continue
		}
		flush()
	}
	flush()
	return runs
}

func isPlace(lower string) bool {
	_, ok := knownPlaces[lower]
	return ok
}

func hasOrgCue(lower string) bool {
	for _, tok := range strings.Fields(lower) {
		if _, ok := orgCues[strings.Trim(tok, ".")]; ok {
			return true
		}
	}
	return false
}

func looksLikeName(run string) bool {
	words := strings.Fields(run)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
