package schema

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate checks input against s and returns either the validated
// document or the complete list of field errors. It is a pure function of
// its two inputs: no I/O, no shared mutable state, deterministic output.
//
// All fields are checked; validation never stops at the first failure.
// Errors are ordered by schema field declaration, then by list element
// index. On failure the returned Document is nil.
func Validate(s *RecordSchema, input map[string]any) (Document, FieldErrors) {
	var errs FieldErrors
	doc := validateRecord(s, input, "", &errs)
	if len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

// validateRecord walks the schema's fields in order, accumulating errors
// into errs and building the validated document as it goes.
func validateRecord(s *RecordSchema, input map[string]any, path string, errs *FieldErrors) Document {
	doc := make(Document, len(s.Fields))

	for _, f := range s.Fields {
		fieldPath := joinPath(path, f.Name)
		raw, present := input[f.Name]

		// A JSON null is treated exactly like an absent field.
		if !present || raw == nil {
			if _, optional := f.Type.(Optional); optional {
				// Absent optional fields take their declared default, or
				// are omitted from the output entirely when none exists.
				if f.Default != nil {
					doc[f.Name] = f.Default
				}
				continue
			}
			*errs = append(*errs, FieldError{
				Path:    fieldPath,
				Kind:    ErrMissingField,
				Message: "required field is missing",
			})
			continue
		}

		if v, ok := validateValue(f.Type, f.Format, raw, fieldPath, errs); ok {
			doc[f.Name] = v
		}
	}

	return doc
}

// validateValue checks one value against its declared type. It returns
// the validated (possibly normalized) value and whether the type check
// passed. Format failures still return ok=true: the value had the right
// type, and the format error has already been recorded.
func validateValue(t Type, format string, raw any, path string, errs *FieldErrors) (any, bool) {
	switch tt := t.(type) {
	case Optional:
		// A present optional value validates exactly like its element type.
		return validateValue(tt.Elem, format, raw, path, errs)

	case Primitive:
		v, ok := checkPrimitive(tt.Kind, raw)
		if !ok {
			*errs = append(*errs, FieldError{
				Path:    path,
				Kind:    ErrTypeMismatch,
				Message: fmt.Sprintf("must be a %s", tt.Kind),
				Value:   raw,
			})
			return nil, false
		}
		if format != "" {
			if msg := checkFormat(format, v); msg != "" {
				*errs = append(*errs, FieldError{
					Path:    path,
					Kind:    ErrFormatInvalid,
					Message: msg,
					Value:   raw,
				})
			}
		}
		return v, true

	case Record:
		obj, ok := raw.(map[string]any)
		if !ok {
			*errs = append(*errs, FieldError{
				Path:    path,
				Kind:    ErrTypeMismatch,
				Message: "must be an object",
				Value:   raw,
			})
			return nil, false
		}
		// Child errors carry the parent path prefix, so a bad email inside
		// "customer" surfaces as "customer.email".
		return validateRecord(tt.Schema, obj, path, errs), true

	case List:
		seq, ok := raw.([]any)
		if !ok {
			*errs = append(*errs, FieldError{
				Path:    path,
				Kind:    ErrTypeMismatch,
				Message: "must be an array",
				Value:   raw,
			})
			return nil, false
		}
		// An empty sequence is valid; the schema declares no minimum length.
		out := make([]any, 0, len(seq))
		for i, elem := range seq {
			if v, ok := validateValue(tt.Elem, "", elem, fmt.Sprintf("%s[%d]", path, i), errs); ok {
				out = append(out, v)
			}
		}
		return out, true

	default:
		// Unreachable with the variants this package exports.
		*errs = append(*errs, FieldError{
			Path:    path,
			Kind:    ErrTypeMismatch,
			Message: "unsupported field type",
			Value:   raw,
		})
		return nil, false
	}
}

// checkPrimitive verifies raw against the declared primitive kind and
// returns the normalized value: string, int64, float64, or bool.
//
// Typing is strict: numeric strings are never accepted for number fields.
// Numbers may arrive as float64 (encoding/json default) or json.Number
// (decoders configured with UseNumber), and integer fields accept either
// as long as the value is integral.
func checkPrimitive(k Kind, raw any) (any, bool) {
	switch k {
	case KindString:
		s, ok := raw.(string)
		return s, ok

	case KindBool:
		b, ok := raw.(bool)
		return b, ok

	case KindFloat:
		switch n := raw.(type) {
		case float64:
			return n, true
		case json.Number:
			f, err := n.Float64()
			return f, err == nil
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
		return nil, false

	case KindInt:
		switch n := raw.(type) {
		case int:
			return int64(n), true
		case int64:
			return n, true
		case json.Number:
			i, err := n.Int64()
			return i, err == nil
		case float64:
			// encoding/json decodes every number as float64; accept it for
			// integer fields only when it carries no fractional part.
			if n == math.Trunc(n) && !math.IsInf(n, 0) {
				return int64(n), true
			}
		}
		return nil, false
	}

	return nil, false
}

// joinPath appends a field name to a dotted path prefix.
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
