package parser

import "regexp"

// Vocabulary carries the corpus-tuned word lists and pattern sets the field
// extractors match against. It is data, not control flow: callers with a
// different resume corpus can swap in their own lists without touching the
// extractors.
type Vocabulary struct {
	// Skills is matched case-insensitively as whole words.
	Skills []string
	// SkillAcronyms lists skills rendered in upper case; everything else is
	// title-cased.
	SkillAcronyms map[string]struct{}
	// DegreePatterns is a priority ordering: the first pattern that matches
	// wins.
	DegreePatterns []*regexp.Regexp
	// TitlePatterns are tried in order; explicit "Current/Position" labels
	// come before the fixed job-title vocabulary.
	TitlePatterns []*regexp.Regexp
	// CompanyStoplist holds lowercased ORG-entity texts that are skills,
	// locations, or degrees and never companies.
	CompanyStoplist map[string]struct{}
	// EducationKeywords mark an ORG entity as an educational institution.
	EducationKeywords []string
	// SpokenLanguages is the fixed spoken-language list (not programming
	// languages).
	SpokenLanguages []string
}

// DefaultVocabulary returns the vocabulary tuned against the original
// resume corpus.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills: []string{
			"python", "java", "javascript", "c++", "c#", "ruby", "php",
			"swift", "kotlin", "react", "angular", "vue", "node", "django",
			"flask", "fastapi", "spring", "docker", "kubernetes", "aws",
			"azure", "gcp", "git", "jenkins", "ci/cd", "sql", "mysql",
			"postgresql", "mongodb", "redis", "elasticsearch",
			"machine learning", "deep learning", "nlp", "computer vision",
			"ai", "tensorflow", "pytorch", "keras", "scikit-learn", "pandas",
			"numpy", "html", "css", "typescript", "sass", "webpack",
			"rest api", "graphql", "spacy", "nltk", "linux", "bash", "shell",
			"agile", "scrum",
		},
		SkillAcronyms: map[string]struct{}{
			"ai": {}, "nlp": {}, "ci/cd": {}, "html": {}, "css": {},
			"sql": {}, "aws": {}, "gcp": {},
		},
		DegreePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(B\.?Tech|Bachelor of Technology|B\.?E\.?|Bachelor of Engineering)\b`),
			regexp.MustCompile(`(?i)\b(M\.?Tech|Master of Technology|M\.?E\.?|Master of Engineering)\b`),
			regexp.MustCompile(`(?i)\b(B\.?S\.?|Bachelor of Science|B\.?Sc\.?)\b`),
			regexp.MustCompile(`(?i)\b(M\.?S\.?|Master of Science|M\.?Sc\.?)\b`),
			regexp.MustCompile(`(?i)\b(MBA|Master of Business Administration)\b`),
			regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctor of Philosophy)\b`),
			regexp.MustCompile(`(?i)\b(BCA|Bachelor of Computer Applications)\b`),
			regexp.MustCompile(`(?i)\b(MCA|Master of Computer Applications)\b`),
		},
		TitlePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:Current|Present)[\s:]+(.+?)(?:\n|at)`),
			regexp.MustCompile(`(?i)(?:Position|Role|Title)[\s:]+(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)\b(Software Engineer|Senior Software Engineer|Lead Engineer|Tech Lead|Engineering Manager)\b`),
			regexp.MustCompile(`(?i)\b(Data Scientist|Data Analyst|Machine Learning Engineer|AI Engineer)\b`),
			regexp.MustCompile(`(?i)\b(Full Stack Developer|Frontend Developer|Backend Developer|Web Developer)\b`),
			regexp.MustCompile(`(?i)\b(DevOps Engineer|Cloud Engineer|Solutions Architect)\b`),
			regexp.MustCompile(`(?i)\b(Product Manager|Project Manager|Scrum Master)\b`),
		},
		CompanyStoplist: map[string]struct{}{
			"angular": {}, "typescript": {}, "sql": {}, "javascript": {},
			"python": {}, "java": {}, "websockets": {}, "data structures": {},
			"ai/ml": {}, "render": {}, "google oauth": {}, "msc": {},
			"sqs": {}, "aws": {}, "gcp": {}, "azure": {}, "docker": {},
			"kubernetes": {}, "uttar pradesh": {}, "delhi": {}, "mumbai": {},
			"bangalore": {}, "hyderabad": {}, "bachelor of technology": {},
			"master of technology": {}, "b.tech": {}, "m.tech": {},
			"rest api": {}, "graphql": {}, "nodejs": {}, "reactjs": {},
		},
		EducationKeywords: []string{"university", "college", "institute", "school"},
		SpokenLanguages: []string{
			"english", "hindi", "spanish", "french", "german", "chinese",
			"japanese", "korean", "arabic", "portuguese", "russian",
		},
	}
}
