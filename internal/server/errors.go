// Package server provides the HTTP REST API for resume analysis.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-insight/internal/parsing"
)

// ErrNoSession indicates no resume has been uploaded yet
type ErrNoSession struct{}

func (e *ErrNoSession) Error() string {
	return "no resume uploaded yet"
}

// ErrNoFile indicates the upload request carried no usable file
type ErrNoFile struct {
	Reason string
}

func (e *ErrNoFile) Error() string {
	return fmt.Sprintf("no resume file in request: %s", e.Reason)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var extraction *parsing.ExtractionError
	switch {
	case errors.As(err, new(*ErrNoSession)):
		return http.StatusNotFound
	case errors.As(err, new(*ErrNoFile)), errors.As(err, new(*ErrValidation)):
		return http.StatusBadRequest
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
