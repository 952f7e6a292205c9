package types

// Skill categories. Every catalog entry belongs to exactly one; skills
// detected outside the catalog's category tables fall into CategoryTools.
const (
	CategoryProgramming = "Programming Languages"
	CategoryWeb         = "Web Technologies"
	CategoryDatabases   = "Databases"
	CategoryCloud       = "Cloud & DevOps"
	CategoryDataML      = "Data Science & ML"
	CategoryMobile      = "Mobile"
	CategorySecurity    = "Cybersecurity"
	CategoryEmbedded    = "Electronics & Embedded"
	CategoryTools       = "Tools & Others"
)

// Categories lists all skill categories in display order.
var Categories = []string{
	CategoryProgramming,
	CategoryWeb,
	CategoryDatabases,
	CategoryCloud,
	CategoryDataML,
	CategoryMobile,
	CategorySecurity,
	CategoryEmbedded,
	CategoryTools,
}

// Skill is one entry of the static skill catalog: a normalized lowercase
// identifier with its human display form and category label.
type Skill struct {
	Name     string `json:"name"`    // normalized lowercase identifier
	Display  string `json:"display"` // human display form
	Category string `json:"category"`
}

// SkillProfile is derived once per uploaded résumé and never mutated
// afterwards; a re-upload replaces it wholesale.
type SkillProfile struct {
	// Skills holds display names, lexicographically sorted.
	Skills []string `json:"skills"`
	// SkillsLower holds the parallel lowercase identifiers, sorted to
	// mirror Skills.
	SkillsLower []string `json:"skills_lower"`
	// Categorized maps category label to its sorted display-name list.
	// Empty categories are omitted.
	Categorized map[string][]string `json:"categorized_skills"`
	// ExperienceYears is 0 when no experience statement was detected.
	ExperienceYears int `json:"experience_years"`
}

// Count returns the number of distinct skills in the profile.
func (p *SkillProfile) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Skills)
}

// Empty reports whether no skills were detected.
func (p *SkillProfile) Empty() bool {
	return p.Count() == 0
}
