package skills

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Options controls section-scoped extraction behavior.
type Options struct {
	// SubstringMatch enables the fallback that accepts a skills-section
	// token when a catalog entry is contained in it as a substring. The
	// fallback can misfire for short entries, so only entries longer than
	// MinSubstringLen participate.
	SubstringMatch bool
	// MinSubstringLen is the length a catalog entry must exceed to be
	// eligible for substring matching.
	MinSubstringLen int
}

// DefaultOptions returns the extraction defaults: substring matching on,
// guarded to entries longer than two characters.
func DefaultOptions() Options {
	return Options{SubstringMatch: true, MinSubstringLen: 2}
}

// sectionDelimiters split the skills section into candidate tokens.
var sectionDelimiters = []string{",", "•", "·", "|", "\n", ";", "/"}

// skillPatterns holds one boundary-guarded pattern per catalog entry.
// Bounded by non-alphanumeric characters so "go" never matches inside
// "golang" or "django".
var skillPatterns = buildPatterns()

func buildPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(catalogIndex))
	for name := range catalogIndex {
		expr := `(?i)(?:\A|[^a-zA-Z0-9])` + regexp.QuoteMeta(name) + `(?:[^a-zA-Z0-9]|\z)`
		patterns[name] = regexp.MustCompile(expr)
	}
	return patterns
}

// Experience patterns in priority order; only the first matching pattern
// is used, with no aggregation across multiple mentions.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*of\s*experience`),
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?\s*of\s*experience`),
}

// ScanText returns the normalized names of all catalog entries that occur
// in the text, bounded by non-alphanumeric characters.
func ScanText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var found []string
	for name, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			found = append(found, name)
		}
	}
	return found
}

// ScanSkillsSection tokenizes the skills section on the fixed delimiter
// set and accepts each token on an exact catalog match, or on a substring
// match against catalog entries longer than opts.MinSubstringLen when
// opts.SubstringMatch is set.
func ScanSkillsSection(section string, opts Options) []string {
	if strings.TrimSpace(section) == "" {
		return nil
	}

	tokens := []string{section}
	for _, delim := range sectionDelimiters {
		var next []string
		for _, token := range tokens {
			next = append(next, strings.Split(token, delim)...)
		}
		tokens = next
	}

	found := make(map[string]bool)
	for _, token := range tokens {
		cleaned := strings.ToLower(strings.TrimSpace(token))
		if cleaned == "" {
			continue
		}
		if _, ok := catalogIndex[cleaned]; ok {
			found[cleaned] = true
		}
		if !opts.SubstringMatch {
			continue
		}
		for name := range catalogIndex {
			if len(name) > opts.MinSubstringLen && strings.Contains(cleaned, name) {
				found[name] = true
			}
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	return names
}

// ExtractExperienceYears returns the years of experience stated in the
// text, or 0 when no pattern matches.
func ExtractExperienceYears(text string) int {
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}

// Extract produces a SkillProfile from parsed résumé data. Empty or
// missing sections degrade gracefully: a résumé with no skills section is
// covered by the whole-text scan alone.
func Extract(resume *types.ResumeData, opts Options) *types.SkillProfile {
	found := make(map[string]bool)

	for _, name := range ScanText(resume.Text) {
		found[name] = true
	}
	for _, name := range ScanSkillsSection(resume.Section(types.SectionSkills), opts) {
		found[name] = true
	}
	// Project and experience sections get a second boundary-guarded pass;
	// whole-text detection already covers them, but the scoped scan keeps
	// section truncation from hiding mentions when the full text is empty.
	for _, name := range ScanText(resume.Section(types.SectionProjects)) {
		found[name] = true
	}
	for _, name := range ScanText(resume.Section(types.SectionExperience)) {
		found[name] = true
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	// Sort by display name so Skills and SkillsLower stay parallel.
	sort.Slice(names, func(i, j int) bool {
		return DisplayName(names[i]) < DisplayName(names[j])
	})

	displays := make([]string, len(names))
	for i, name := range names {
		displays[i] = DisplayName(name)
	}

	return &types.SkillProfile{
		Skills:          displays,
		SkillsLower:     names,
		Categorized:     Categorize(names),
		ExperienceYears: ExtractExperienceYears(resume.Text),
	}
}
