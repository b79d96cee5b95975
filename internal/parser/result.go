package parser

// Links groups the professional profile URLs found in a resume. It is
// omitted from the record entirely when no sub-field was found.
type Links struct {
	LinkedIn  *string  `json:"linkedin"`
	GitHub    *string  `json:"github"`
	Portfolio *string  `json:"portfolio"`
	Other     []string `json:"other,omitempty"`
}

// ParsedResume is the structured record produced by one parse. The first
// seven fields are always present, serialized as null when not found; every
// other field is dropped from the serialized record when empty.
type ParsedResume struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	MobileNumber *string `json:"mobile_number"`
	Location     *string `json:"location"`
	Degree       *string `json:"degree"`
	CollegeName  *string `json:"college_name"`
	Designation  *string `json:"designation"`

	Skills       []string `json:"skills,omitempty"`
	CompanyNames []string `json:"company_names,omitempty"`
	// Experience mirrors CompanyNames; consumers of the legacy schema read
	// tenure history from this key.
	Experience      []string `json:"experience,omitempty"`
	TotalExperience *string  `json:"total_experience,omitempty"`
	NoOfPages       *int     `json:"no_of_pages,omitempty"`
	Links           *Links   `json:"links,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Summary         *string  `json:"summary,omitempty"`
	Projects        []string `json:"projects,omitempty"`
}

// emptyResult is the all-null record returned for unreadable input and for
// any unexpected pipeline failure.
func emptyResult() ParsedResume {
	return ParsedResume{}
}
