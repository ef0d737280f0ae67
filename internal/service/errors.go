package service

import (
	"errors"
	"fmt"
	"strings"
)

// Input validation failures, surfaced to clients as 400s.
var (
	ErrEmptyInput    = errors.New("ingredients and steps must not be empty")
	ErrInputTooLarge = errors.New("combined ingredients and steps exceed the maximum input length")
)

// ProviderError reports a failed call to the generation provider
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider request failed: %v", e.Err)
	}
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// FormatErrorKind distinguishes the ways a completion can fail recipe
// validation
type FormatErrorKind string

const (
	MalformedJSON     FormatErrorKind = "malformed_json"
	MissingFields     FormatErrorKind = "missing_fields"
	EmptyRequiredList FormatErrorKind = "empty_required_list"
)

// FormatError reports a completion that could not be validated as a recipe.
// Raw holds the offending text for logging; it never crosses the API
// boundary.
type FormatError struct {
	Kind   FormatErrorKind
	Detail string   // parser diagnostic, or the offending field name
	Fields []string // every absent field, for MissingFields
	Raw    string
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case MissingFields:
		return "recipe is missing required fields: " + strings.Join(e.Fields, ", ")
	case EmptyRequiredList:
		return fmt.Sprintf("recipe field %q must be a non-empty list", e.Detail)
	default:
		return "model response was not valid JSON"
	}
}
