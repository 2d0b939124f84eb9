package schema

import "github.com/go-playground/validator/v10"

// formatValidator backs all format rules. validator.Validate is safe for
// concurrent use, so one shared instance is enough.
var formatValidator = validator.New()

// formatRule pairs a validator tag with the message reported on failure.
type formatRule struct {
	tag     string
	message string
}

// formatRules maps FieldSpec.Format names to their rule. Declaring a
// schema with a format name not present here is a programming error and
// is caught by MustFormats at startup.
var formatRules = map[string]formatRule{
	"email": {tag: "email", message: "must be a valid email address"},
	"uuid":  {tag: "uuid", message: "must be a valid UUID"},
	"url":   {tag: "url", message: "must be a valid URL"},
}

// checkFormat runs the named rule against a value that already passed its
// type check. It returns the failure message, or "" when the value is valid.
func checkFormat(name string, value any) string {
	rule, ok := formatRules[name]
	if !ok {
		return "unknown format rule: " + name
	}
	if err := formatValidator.Var(value, rule.tag); err != nil {
		return rule.message
	}
	return ""
}

// MustFormats panics if any field in s (or a schema it references) names
// a format rule that does not exist. Call it once at startup, right after
// schema declaration, so typos fail fast instead of at request time.
func MustFormats(s *RecordSchema) {
	for _, f := range s.Fields {
		if f.Format != "" {
			if _, ok := formatRules[f.Format]; !ok {
				panic("schema: unknown format rule " + f.Format + " on field " + f.Name + " of " + s.Name)
			}
		}
		mustFormatsType(f.Type)
	}
}

func mustFormatsType(t Type) {
	switch tt := t.(type) {
	case Optional:
		mustFormatsType(tt.Elem)
	case List:
		mustFormatsType(tt.Elem)
	case Record:
		MustFormats(tt.Schema)
	}
}
