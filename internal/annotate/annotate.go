// Package annotate defines the entity annotation capability consumed by the
// resume parser. The statistical model behind it is an external concern; the
// pipeline only sees labeled spans.
package annotate

// Label classifies an entity span.
type Label string

const (
	// LabelPerson marks a personal name.
	LabelPerson Label = "PERSON"
	// LabelOrg marks an organization name.
	LabelOrg Label = "ORG"
	// LabelLocation marks a geopolitical entity or location.
	LabelLocation Label = "GPE_OR_LOC"
)

// Span is a substring of the annotated text tagged with a semantic category.
type Span struct {
	Text  string
	Label Label
}

// Annotator produces entity spans for one document's text. Implementations
// are expected to be safe for reuse across parses; a heavyweight model should
// be constructed once and passed in as a long-lived handle.
type Annotator interface {
	Annotate(text string) []Span
}
