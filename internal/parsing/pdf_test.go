package parsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_GarbageInput(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf document"))

	var extraction *ExtractionError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &extraction))
}

func TestExtractText_EmptyInput(t *testing.T) {
	_, err := ExtractText(nil)

	var extraction *ExtractionError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &extraction))
}

func TestExtractionError_Message(t *testing.T) {
	err := &ExtractionError{Message: "no extractable text (scanned image?)"}
	assert.Contains(t, err.Error(), "pdf extraction failed")
	assert.Contains(t, err.Error(), "scanned image")

	wrapped := &ExtractionError{Message: "unreadable document", Cause: errors.New("bad xref")}
	assert.Contains(t, wrapped.Error(), "bad xref")
	assert.Equal(t, "bad xref", errors.Unwrap(wrapped).Error())
}
