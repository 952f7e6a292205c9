package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRole is one static job-description record from the catalog.
// Records are read-only for the lifetime of the process.
type JobRole struct {
	ID             string   `json:"id" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Category       string   `json:"category"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1"`
	NiceToHave     []string `json:"nice_to_have"`
}

// AllSkills returns required and nice-to-have skills as one list,
// required first. Uniqueness is not enforced, matching catalog semantics.
func (j *JobRole) AllSkills() []string {
	all := make([]string, 0, len(j.RequiredSkills)+len(j.NiceToHave))
	all = append(all, j.RequiredSkills...)
	all = append(all, j.NiceToHave...)
	return all
}

// Validate validates the JobRole using the validator.
func (j *JobRole) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// JobRoleCatalog is the loaded job-role catalog. An empty Roles slice is
// a valid (degraded) catalog: matching over it returns no matches.
type JobRoleCatalog struct {
	Roles []JobRole `json:"job_roles"`
}

// Len returns the number of roles in the catalog.
func (c *JobRoleCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Roles)
}
