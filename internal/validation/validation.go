// Package validation connects the HTTP layer to the schema engine.
//
// It decodes an incoming JSON body into a raw document tree, validates it
// against a declared RecordSchema, and converts any field errors into the
// HTTP error shape clients receive. Malformed JSON is a transport
// failure (plain 400); schema violations are reported per-field.
package validation

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/errs"
	"github.com/orderkit/orderkit/internal/schema"
)

// BindAndValidate decodes the request body and validates it against s.
//
// Flow:
//  1. Decode the JSON body into a map[string]any (UseNumber, so integer
//     fields keep full precision).
//  2. schema.Validate collects every field error in one pass.
//  3. On failure, return a 400 *errs.HTTPError carrying the full error
//     list; otherwise return the validated document.
func BindAndValidate(c echo.Context, s *schema.RecordSchema) (schema.Document, error) {
	raw, err := BindDocument(c)
	if err != nil {
		return nil, errs.NewBadRequestError("Request body must be a valid JSON object", false, nil, nil, nil)
	}

	doc, fieldErrors := schema.Validate(s, raw)
	if fieldErrors != nil {
		return nil, errs.NewValidationError(toFieldErrors(fieldErrors))
	}

	return doc, nil
}

// BindDocument decodes the request body into a raw document tree without
// validating it. Numbers are decoded as json.Number so the schema engine
// can distinguish integral from fractional values.
func BindDocument(c echo.Context) (map[string]any, error) {
	var raw map[string]any

	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// toFieldErrors converts schema field errors into the client-facing shape.
func toFieldErrors(fieldErrors schema.FieldErrors) []errs.FieldError {
	out := make([]errs.FieldError, len(fieldErrors))
	for i, fe := range fieldErrors {
		out[i] = errs.FieldError{
			Field: fe.Path,
			Kind:  string(fe.Kind),
			Error: fe.Message,
		}
	}
	return out
}
