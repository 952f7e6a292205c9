// Package parsing extracts text, contact fields, and sections from uploaded résumés.
package parsing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts plain text from a PDF document, page by page.
// Pages that cannot be decoded are skipped; a document with no decodable
// pages returns an ExtractionError (typically a scanned-image résumé).
func ExtractText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "unreadable document", Cause: err}
	}

	var sb strings.Builder
	pages := 0
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		pages++
	}

	if pages == 0 || strings.TrimSpace(sb.String()) == "" {
		return "", &ExtractionError{Message: "no extractable text (scanned image?)"}
	}

	return sb.String(), nil
}
