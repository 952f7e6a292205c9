package parsing

import "fmt"

// ExtractionError represents a failure to extract text from a PDF.
// Callers treat the résumé as having empty text and surface the message
// to the user; extraction never crashes an interaction.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
