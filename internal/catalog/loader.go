// Package catalog loads and validates the static job-role catalog.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-insight/internal/types"
)

//go:embed schema.json
var catalogSchema string

// DefaultPath is the catalog location relative to the working directory.
const DefaultPath = "data/job_roles.json"

// ValidationError reports catalog documents that fail schema validation,
// with per-field messages.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Load reads and validates the job-role catalog at path. A missing file
// yields an empty catalog together with the underlying error so that the
// caller can log and proceed; a malformed or schema-invalid file does the
// same. Matching over an empty catalog simply returns no matches.
func Load(path string) (*types.JobRoleCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &types.JobRoleCatalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the embedded schema, then
// decodes it and validates each record. Unknown-shape input is rejected at
// this boundary rather than carried along as loosely-typed data.
func Parse(data []byte) (*types.JobRoleCatalog, error) {
	if err := validateSchema(data); err != nil {
		return &types.JobRoleCatalog{}, err
	}

	var cat types.JobRoleCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return &types.JobRoleCatalog{}, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	seen := make(map[string]bool, len(cat.Roles))
	for i := range cat.Roles {
		role := &cat.Roles[i]
		if err := role.Validate(); err != nil {
			return &types.JobRoleCatalog{}, fmt.Errorf("invalid job role %q: %w", role.ID, err)
		}
		if seen[role.ID] {
			return &types.JobRoleCatalog{}, fmt.Errorf("duplicate job role id %q", role.ID)
		}
		seen[role.ID] = true
	}

	return &cat, nil
}

func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("catalog schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
