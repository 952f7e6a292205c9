// Package types provides type definitions for structured data used throughout the resume-insight system.
package types

// NotFound is the sentinel value for contact fields that could not be extracted.
const NotFound = "Not found"

// Resume section names recognized by the parser.
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionSummary        = "summary"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// SectionNames lists all recognized section names in a stable order.
var SectionNames = []string{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionSummary,
	SectionCertifications,
	SectionAchievements,
}

// ResumeData holds everything extracted from one uploaded résumé.
// Contact fields default to NotFound when extraction fails; Sections
// entries are empty strings for sections that were not located.
type ResumeData struct {
	Text     string            `json:"text"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	LinkedIn string            `json:"linkedin"`
	GitHub   string            `json:"github"`
	Sections map[string]string `json:"sections"`
}

// Section returns the text of a named section, or "" if it was not found.
func (r *ResumeData) Section(name string) string {
	if r == nil || r.Sections == nil {
		return ""
	}
	return r.Sections[name]
}
