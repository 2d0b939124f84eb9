package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a field-level validation failure.
type ErrorKind string

const (
	// ErrMissingField means a required field was absent from the input.
	ErrMissingField ErrorKind = "missing_field"

	// ErrTypeMismatch means a value was present but of the wrong type.
	ErrTypeMismatch ErrorKind = "type_mismatch"

	// ErrFormatInvalid means a value passed its type check but failed the
	// field's declared format rule (e.g. a string that is not an email).
	ErrFormatInvalid ErrorKind = "format_invalid"
)

// FieldError describes one field-level validation failure.
type FieldError struct {
	// Path locates the failing field in the input document using dotted
	// and indexed notation, e.g. "customer.email" or "items[1].price".
	Path string `json:"path"`

	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`

	// Message is the human-readable reason.
	Message string `json:"message"`

	// Value is the offending raw value. Nil for missing fields.
	Value any `json:"value,omitempty"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Path, e.Message)
}

// FieldErrors is the complete, ordered set of failures from one Validate
// call. Validation never short-circuits, so every failing field appears.
// It satisfies error so it can travel through normal error returns.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether at least one error exists for the given field path.
func (fe FieldErrors) Has(path string) bool {
	for _, e := range fe {
		if e.Path == path {
			return true
		}
	}
	return false
}
