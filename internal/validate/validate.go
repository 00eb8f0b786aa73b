// Package validate holds the per-endpoint input contracts: strict query
// parameter allow-lists, enumerated-value checks, and the intake free-text
// rules. Validation is fail-fast; the first violated constraint is returned
// and nothing is partially applied.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
)

const (
	MinDescriptionLength = 20
	MaxDescriptionLength = 3000
)

var (
	submitterPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

	// Location-signal heuristic: the description must mention at least one
	// address or landmark keyword. Substring match, case-insensitive, same
	// keyword set the intake form advertises.
	addressPattern = regexp.MustCompile(`(?i)(?:near|opp|opposite|behind|street|road|rd|st|cross|main|junction|circle|layout|block|sector|ward|colony|nagar|puram|halli|pet|market|temple|school|hospital|park)`)
)

// QueryParams rejects any supplied query parameter outside the allow-list.
// Unknown parameters are an error, not silently ignored; the message
// enumerates both the offending and the allowed names.
func QueryParams(query url.Values, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}
	var invalid []string
	for param := range query {
		if _, ok := allowedSet[param]; !ok {
			invalid = append(invalid, param)
		}
	}
	if len(invalid) > 0 {
		return apperr.Newf(apperr.KindValidation,
			"Invalid query parameter(s): %s. Allowed parameters: %s",
			strings.Join(invalid, ", "), strings.Join(allowed, ", "))
	}
	return nil
}

// Enum checks a value against an allow-list and reports the allowed set on
// violation.
func Enum(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return apperr.Newf(apperr.KindValidation,
		"Invalid %s value. Allowed values: %s", field, strings.Join(allowed, ", "))
}

// IntakeText applies the complaint description rules to the trimmed text:
// length within [MinDescriptionLength, MaxDescriptionLength] and at least one
// location keyword present. Bounds count characters, not bytes, so multibyte
// scripts are measured the way the intake form measures them.
func IntakeText(trimmed string) error {
	length := utf8.RuneCountInString(trimmed)
	if length < MinDescriptionLength {
		return apperr.Newf(apperr.KindValidation,
			"Description must be at least %d characters. Currently: %d",
			MinDescriptionLength, length)
	}
	if !addressPattern.MatchString(trimmed) {
		return apperr.New(apperr.KindValidation,
			"Description must contain location details (e.g., 'Near', 'Road', 'Street', 'Ward', 'Layout').")
	}
	if length > MaxDescriptionLength {
		return apperr.Newf(apperr.KindValidation,
			"Description exceeds max limit of %d characters.", MaxDescriptionLength)
	}
	return nil
}

// SubmitterID enforces the submitter identifier pattern [A-Za-z0-9_]+.
func SubmitterID(id string) error {
	if id == "" {
		return apperr.New(apperr.KindValidation, "Submitted_by identifier is required")
	}
	if !submitterPattern.MatchString(id) {
		return apperr.New(apperr.KindValidation, "Invalid submitted_by format. Use alphanumeric characters only.")
	}
	return nil
}

// Required reports a missing field with its expected primitive type.
func Required(field, typeName string) error {
	return apperr.Newf(apperr.KindValidation, "%s is required and must be a %s", field, typeName)
}

// Sort validates the two supported orderings.
func Sort(value string) error {
	if value != "newest" && value != "oldest" {
		return apperr.New(apperr.KindValidation, "Invalid sort value. Allowed: newest, oldest")
	}
	return nil
}
