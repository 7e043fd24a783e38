package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Validation rule patterns
var (
	// EmailPattern accepts anything shaped like local@domain.tld
	EmailPattern = `\S+@\S+\.\S+`

	// NameMaxLength is the longest course type or course name accepted
	NameMaxLength = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Kind classifies a field validation failure
type Kind string

const (
	KindRequired          Kind = "Required"
	KindTooLong           Kind = "TooLong"
	KindInvalidFormat     Kind = "InvalidFormat"
	KindDuplicateOffering Kind = "DuplicateOffering"
	KindNotFound          Kind = "NotFound"
)

// GeneralField is the key used for errors that belong to the whole form
const GeneralField = "general"

// FieldError is a single human-readable failure attached to a form field
type FieldError struct {
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
}

// FieldErrors maps a field name to its failure. An empty mapping means valid.
type FieldErrors map[string]FieldError

// Add records a failure for field, replacing any earlier one
func (fe FieldErrors) Add(field string, kind Kind, message string) {
	fe[field] = FieldError{Kind: kind, Message: message}
}

// Valid reports whether no field failed
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Has reports whether any field failed with the given kind
func (fe FieldErrors) Has(kind Kind) bool {
	for _, e := range fe {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Merge copies other into fe
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, e := range other {
		fe[field] = e
	}
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// TextLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane (most emoji) count twice.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// NewStringValidation creates a new required string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets the maximum length as measured by TextLength
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Check returns the first rule the value breaks, or "" when it passes.
// Whitespace-only values count as empty.
func (v *StringValidation) Check() Kind {
	if strings.TrimSpace(v.Value) == "" {
		if v.Required {
			return KindRequired
		}
		return ""
	}

	if v.MaxLen > 0 && TextLength(v.Value) > v.MaxLen {
		return KindTooLong
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return KindInvalidFormat
	}

	return ""
}

// Validate reports whether the value passes every rule
func (v *StringValidation) Validate() bool {
	return v.Check() == ""
}
