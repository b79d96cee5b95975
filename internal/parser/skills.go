package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// extractSkills matches the vocabulary as whole words against the lowercased
// text. Acronyms are upper-cased, everything else title-cased; the result is
// sorted and deduplicated.
func (v Vocabulary) extractSkills(text string) []string {
	textLower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, skill := range v.Skills {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(skill) + `\b`)
		if err != nil {
			continue
		}
		if !pattern.MatchString(textLower) {
			continue
		}
		if _, ok := v.SkillAcronyms[skill]; ok {
			found[strings.ToUpper(skill)] = struct{}{}
		} else {
			found[titleCase(skill)] = struct{}{}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// extractLanguages matches the spoken-language vocabulary as whole words.
func (v Vocabulary) extractLanguages(text string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, lang := range v.SpokenLanguages {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(lang) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(textLower) {
			found = append(found, titleCase(lang))
		}
	}
	return found
}

// titleCase upper-cases every letter that follows a non-letter, so
// "machine learning" becomes "Machine Learning" and "scikit-learn" becomes
// "Scikit-Learn".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
