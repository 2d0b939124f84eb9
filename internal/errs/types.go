// Package errs defines the error types the API surfaces to clients.
//
// Every error that reaches the global error handler is translated into an
// HTTPError, so clients always receive the same JSON shape: a stable
// machine-readable code, a human-readable message, and (for validation
// failures) a list of per-field errors.
package errs

import "strings"

// FieldError is one field-level validation failure as presented to the
// client.
//
// Example:
//
//	{ "field": "customer.email", "kind": "format_invalid", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the dotted/indexed path of the failing field,
	// e.g. "customer.email" or "items[1].price".
	Field string `json:"field"`

	// Kind classifies the failure (missing_field, type_mismatch,
	// format_invalid). Empty for errors that carry no classification.
	Kind string `json:"kind,omitempty"`

	// Error is the human-readable message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere;
	// Value holds the target URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional instruction for the client to act on, attached to
// some error responses.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type serialized to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST")
//   - Message: human-friendly message
//   - Status: HTTP status code
//   - Override: lets middleware decide whether to replace the message
//   - Errors: per-field validation errors, when applicable
//   - Action: optional client instruction
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`
	Action *Action      `json:"action,omitempty"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is match any *HTTPError regardless of its contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced,
// leaving the original untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
