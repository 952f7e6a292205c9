package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// Ordered phone patterns, most specific first. Covers Indian (+91) and
// international formats with space/dot/dash separators.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+91[\s\-]?\d{5}[\s\-]?\d{5}`),
	regexp.MustCompile(`\b91[\s\-]?\d{10}\b`),
	regexp.MustCompile(`\b\d{5}[\s\-]\d{5}\b`),
	regexp.MustCompile(`\b[6-9]\d{9}\b`),
	regexp.MustCompile(`\+?1?[\s\-]?\(?\d{3}\)?[\s\-]\d{3}[\s\-]\d{4}`),
	regexp.MustCompile(`\b\d[\d\s\-.()]{8,}\d\b`),
}

var (
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w\-]+`)

	// Lines that look like contact info, headers, or URLs are skipped by
	// the name heuristic.
	nonNameLine = regexp.MustCompile(`(?i)@|http|linkedin|github|resume|cv|\d{5,}`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Section header patterns, matched case-insensitively against the full text.
var sectionPatterns = map[string]*regexp.Regexp{
	types.SectionExperience:     regexp.MustCompile(`(?i)work\s*experience|experience|employment|professional\s*experience|work\s*history`),
	types.SectionEducation:      regexp.MustCompile(`(?i)education|academic|qualification|degree`),
	types.SectionSkills:         regexp.MustCompile(`(?i)skills|technical\s*skills|competencies|expertise|technologies`),
	types.SectionProjects:       regexp.MustCompile(`(?i)projects|portfolio|personal\s*projects|academic\s*projects`),
	types.SectionSummary:        regexp.MustCompile(`(?i)summary|objective|profile|about\s*me|career\s*objective`),
	types.SectionCertifications: regexp.MustCompile(`(?i)certifications?|certificates?|courses?|training`),
	types.SectionAchievements:   regexp.MustCompile(`(?i)achievements?|awards?|honors?|accomplishments?`),
}

// ParseResume extracts contact fields and sections from résumé text.
// It never fails: fields that cannot be found carry the NotFound sentinel
// and missing sections are empty strings.
func ParseResume(text string) *types.ResumeData {
	return &types.ResumeData{
		Text:     text,
		Name:     ExtractName(text),
		Email:    ExtractEmail(text),
		Phone:    ExtractPhone(text),
		LinkedIn: ExtractLinkedIn(text),
		GitHub:   ExtractGitHub(text),
		Sections: ExtractSections(text),
	}
}

// ExtractEmail returns the first email address found in the text.
func ExtractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return types.NotFound
}

// ExtractPhone returns the first phone number found, trying the ordered
// pattern list and collapsing internal whitespace.
func ExtractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			return whitespaceRun.ReplaceAllString(strings.TrimSpace(m), " ")
		}
	}
	return types.NotFound
}

// ExtractName applies a first-lines heuristic: among the first eight
// non-empty lines, the first line of 2-5 capitalized words that does not
// look like contact info wins; otherwise the first non-empty line.
func ExtractName(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return types.NotFound
	}

	limit := len(lines)
	if limit > 8 {
		limit = 8
	}
	for _, line := range lines[:limit] {
		if nonNameLine.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		if allCapitalized(words) {
			return line
		}
	}

	return lines[0]
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		if !isAlphaWord(w) {
			continue
		}
		first := rune(w[0])
		if first < 'A' || first > 'Z' {
			return false
		}
	}
	return true
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(w) > 0
}

// ExtractLinkedIn returns the first LinkedIn profile URL found in the text.
func ExtractLinkedIn(text string) string {
	if m := linkedinPattern.FindString(text); m != "" {
		return m
	}
	return types.NotFound
}

// ExtractGitHub returns the first GitHub profile URL found in the text.
func ExtractGitHub(text string) string {
	if m := githubPattern.FindString(text); m != "" {
		return m
	}
	return types.NotFound
}

// ExtractSections splits the text into named sections. Each recognized
// section header position is located, headers are sorted by position, and
// the text between consecutive headers is assigned to the earlier one.
// Sections that are not found map to empty strings.
func ExtractSections(text string) map[string]string {
	sections := make(map[string]string, len(types.SectionNames))
	for _, name := range types.SectionNames {
		sections[name] = ""
	}

	type headerPos struct {
		name  string
		start int
	}

	var found []headerPos
	for name, pattern := range sectionPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			found = append(found, headerPos{name: name, start: loc[0]})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].name < found[j].name
	})

	for i, hp := range found {
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		sections[hp.name] = strings.TrimSpace(text[hp.start:end])
	}

	return sections
}
