// Package schema implements declarative validation of raw JSON document
// trees against statically declared record schemas.
//
// A RecordSchema describes the expected shape of a record: an ordered list
// of fields, each with a declared type (primitive, optional, nested record,
// or list). Schemas are built once at startup and treated as read-only
// afterwards, so Validate can run concurrently from any number of requests
// without coordination.
//
// Unlike struct-tag validation (go-playground/validator), this package
// operates on already-parsed document trees (map[string]any), which lets it
// report every failing field in one pass with full dotted/indexed paths
// like "customer.email" or "items[1].price".
package schema

// Kind identifies a primitive field type.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the JSON-facing name of the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Type is the declared type of a field. Exactly one of the concrete
// variants below implements it:
//
//   - Primitive: string, integer, number, boolean
//   - Optional:  wraps another type; the field may be absent from input
//   - Record:    a nested record validated against its own RecordSchema
//   - List:      a sequence whose elements all share one element type
type Type interface {
	// typeName is the human-readable name used in type mismatch messages.
	typeName() string
}

// Primitive declares a scalar field.
type Primitive struct {
	Kind Kind
}

func (p Primitive) typeName() string { return p.Kind.String() }

// Optional wraps another type to mark a field as not required.
// An absent optional field takes the FieldSpec default if one is declared,
// and is omitted from the validated output otherwise.
type Optional struct {
	Elem Type
}

func (o Optional) typeName() string { return o.Elem.typeName() }

// Record declares a nested record field validated against Schema.
type Record struct {
	Schema *RecordSchema
}

func (r Record) typeName() string { return "object" }

// List declares a sequence field. Every element must independently
// validate against Elem.
type List struct {
	Elem Type
}

func (l List) typeName() string { return "array" }

// Convenience values for the primitive variants, so schema declarations
// read as schema.String rather than schema.Primitive{Kind: schema.KindString}.
var (
	String Type = Primitive{Kind: KindString}
	Int    Type = Primitive{Kind: KindInt}
	Float  Type = Primitive{Kind: KindFloat}
	Bool   Type = Primitive{Kind: KindBool}
)

// OptionalOf wraps t so the field may be absent from input.
func OptionalOf(t Type) Type { return Optional{Elem: t} }

// ListOf declares a list whose elements are validated against t.
func ListOf(t Type) Type { return List{Elem: t} }

// RecordOf declares a nested record field using s.
func RecordOf(s *RecordSchema) Type { return Record{Schema: s} }

// FieldSpec describes one field of a record.
type FieldSpec struct {
	// Name is the key looked up in the input document.
	Name string

	// Type is the declared type.
	Type Type

	// Default is substituted when an Optional field is absent from input.
	// It is ignored for required fields. The value is used as-is; callers
	// declare defaults that already match the field type.
	Default any

	// Format names an additional format rule for constrained primitives,
	// e.g. "email". Format rules run after the type check passes.
	Format string
}

// RecordSchema is the declarative description of a record's expected
// fields. Field order is preserved, so validation errors come out in
// declaration order. Schemas may reference other schemas through Record
// and List fields.
type RecordSchema struct {
	// Name labels the schema in logs and error messages.
	Name string

	// Fields is the ordered field list.
	Fields []FieldSpec
}

// Document is a validated record tree. It mirrors the shape of the
// RecordSchema it was validated against, with defaults applied and
// every value confirmed to match its declared type.
type Document map[string]any
