package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Schemas mirroring the order intake payloads: Item, Address, and Customer
// compose into Order.
var (
	testItem = &RecordSchema{
		Name: "Item",
		Fields: []FieldSpec{
			{Name: "name", Type: String},
			{Name: "description", Type: OptionalOf(String)},
			{Name: "price", Type: Float},
			{Name: "quantity", Type: Int},
		},
	}

	testAddress = &RecordSchema{
		Name: "Address",
		Fields: []FieldSpec{
			{Name: "street", Type: String},
			{Name: "city", Type: String},
			{Name: "state", Type: OptionalOf(String)},
			{Name: "postal_code", Type: String},
			{Name: "country", Type: String},
		},
	}

	testCustomer = &RecordSchema{
		Name: "Customer",
		Fields: []FieldSpec{
			{Name: "name", Type: String},
			{Name: "email", Type: String, Format: "email"},
			{Name: "phone", Type: OptionalOf(String)},
		},
	}

	testOrder = &RecordSchema{
		Name: "Order",
		Fields: []FieldSpec{
			{Name: "order_id", Type: Int},
			{Name: "customer", Type: RecordOf(testCustomer)},
			{Name: "shipping_address", Type: RecordOf(testAddress)},
			{Name: "items", Type: ListOf(RecordOf(testItem))},
			{Name: "total_price", Type: Float},
		},
	}
)

// decode parses a JSON literal into the raw document tree handed to
// Validate, the same way the HTTP layer does.
func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var doc map[string]any
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&doc))
	return doc
}

const validOrderBody = `{
	"order_id": 123,
	"customer": {"name": "John Doe", "email": "johndoe@example.com"},
	"shipping_address": {
		"street": "123 Main St",
		"city": "Springfield",
		"state": "IL",
		"postal_code": "62701",
		"country": "USA"
	},
	"items": [
		{"name": "Laptop", "description": "High-end gaming laptop", "price": 1299.99, "quantity": 1}
	],
	"total_price": 1299.99
}`

func TestValidateOrder(t *testing.T) {
	doc, errs := Validate(testOrder, decode(t, validOrderBody))
	require.Empty(t, errs)
	require.NotNil(t, doc)

	assert.Equal(t, int64(123), doc["order_id"])
	assert.Equal(t, 1299.99, doc["total_price"])

	customer, ok := doc["customer"].(Document)
	require.True(t, ok)
	assert.Equal(t, "John Doe", customer["name"])
	assert.Equal(t, "johndoe@example.com", customer["email"])

	// phone is optional with no default: it must be omitted, not null.
	_, present := customer["phone"]
	assert.False(t, present)

	items, ok := doc["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item, ok := items[0].(Document)
	require.True(t, ok)
	assert.Equal(t, "Laptop", item["name"])
	assert.Equal(t, int64(1), item["quantity"])
}

func TestValidateMissingRequiredField(t *testing.T) {
	input := decode(t, validOrderBody)
	delete(input, "order_id")

	doc, errs := Validate(testOrder, input)
	assert.Nil(t, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "order_id", errs[0].Path)
	assert.Equal(t, ErrMissingField, errs[0].Kind)

	// Validation is deterministic: the same input yields the same error set.
	_, again := Validate(testOrder, input)
	assert.Equal(t, errs, again)
}

func TestValidateNestedFormatError(t *testing.T) {
	input := decode(t, validOrderBody)
	input["customer"].(map[string]any)["email"] = "not-an-email"

	doc, errs := Validate(testOrder, input)
	assert.Nil(t, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "customer.email", errs[0].Path)
	assert.Equal(t, ErrFormatInvalid, errs[0].Kind)
	assert.Equal(t, "not-an-email", errs[0].Value)
}

func TestValidateEmptyList(t *testing.T) {
	input := decode(t, validOrderBody)
	input["items"] = []any{}

	doc, errs := Validate(testOrder, input)
	require.Empty(t, errs)
	assert.Equal(t, []any{}, doc["items"])
}

func TestValidateListElementTypeMismatch(t *testing.T) {
	input := decode(t, validOrderBody)
	input["items"] = []any{
		map[string]any{"name": "Laptop", "price": 1299.99, "quantity": 1},
		map[string]any{"name": "Mouse", "price": "29.99", "quantity": 2},
	}

	doc, errs := Validate(testOrder, input)
	assert.Nil(t, doc)
	require.Len(t, errs, 1)
	assert.Equal(t, "items[1].price", errs[0].Path)
	assert.Equal(t, ErrTypeMismatch, errs[0].Kind)
	assert.Equal(t, "29.99", errs[0].Value)
}

func TestValidateMultipleListElementErrors(t *testing.T) {
	input := decode(t, validOrderBody)
	input["items"] = []any{
		map[string]any{"name": 7, "price": 1299.99, "quantity": 1},
		map[string]any{"name": "Mouse", "quantity": 2},
	}

	_, errs := Validate(testOrder, input)
	require.Len(t, errs, 2)
	assert.Equal(t, "items[0].name", errs[0].Path)
	assert.Equal(t, ErrTypeMismatch, errs[0].Kind)
	assert.Equal(t, "items[1].price", errs[1].Path)
	assert.Equal(t, ErrMissingField, errs[1].Kind)
}

func TestValidateAggregatesAllErrors(t *testing.T) {
	input := decode(t, `{
		"order_id": "abc",
		"customer": {"name": "John Doe", "email": "nope"},
		"items": "not-a-list",
		"total_price": true
	}`)

	_, errs := Validate(testOrder, input)
	require.Len(t, errs, 5)

	// Errors follow schema declaration order.
	assert.Equal(t, "order_id", errs[0].Path)
	assert.Equal(t, ErrTypeMismatch, errs[0].Kind)
	assert.Equal(t, "customer.email", errs[1].Path)
	assert.Equal(t, ErrFormatInvalid, errs[1].Kind)
	assert.Equal(t, "shipping_address", errs[2].Path)
	assert.Equal(t, ErrMissingField, errs[2].Kind)
	assert.Equal(t, "items", errs[3].Path)
	assert.Equal(t, ErrTypeMismatch, errs[3].Kind)
	assert.Equal(t, "total_price", errs[4].Path)
	assert.Equal(t, ErrTypeMismatch, errs[4].Kind)

	assert.True(t, errs.Has("customer.email"))
	assert.False(t, errs.Has("customer.name"))
}

func TestValidateNestedRecordNotAnObject(t *testing.T) {
	input := decode(t, validOrderBody)
	input["customer"] = "John Doe"

	_, errs := Validate(testOrder, input)
	require.Len(t, errs, 1)
	assert.Equal(t, "customer", errs[0].Path)
	assert.Equal(t, ErrTypeMismatch, errs[0].Kind)
}

func TestValidateDefaults(t *testing.T) {
	s := &RecordSchema{
		Name: "Item",
		Fields: []FieldSpec{
			{Name: "name", Type: String},
			{Name: "quantity", Type: OptionalOf(Int), Default: int64(1)},
			{Name: "note", Type: OptionalOf(String)},
		},
	}

	doc, errs := Validate(s, map[string]any{"name": "Laptop"})
	require.Empty(t, errs)
	assert.Equal(t, int64(1), doc["quantity"])
	_, present := doc["note"]
	assert.False(t, present)
}

func TestValidateNullHandling(t *testing.T) {
	s := &RecordSchema{
		Name: "Customer",
		Fields: []FieldSpec{
			{Name: "name", Type: String},
			{Name: "phone", Type: OptionalOf(String)},
		},
	}

	// Null on an optional field is treated like an absent field.
	doc, errs := Validate(s, map[string]any{"name": "John", "phone": nil})
	require.Empty(t, errs)
	_, present := doc["phone"]
	assert.False(t, present)

	// Null on a required field is a missing field.
	_, errs = Validate(s, map[string]any{"name": nil})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Path)
	assert.Equal(t, ErrMissingField, errs[0].Kind)
}

func TestValidateStrictNumbers(t *testing.T) {
	s := &RecordSchema{
		Name: "Item",
		Fields: []FieldSpec{
			{Name: "price", Type: Float},
			{Name: "quantity", Type: Int},
		},
	}

	// Integral JSON numbers are fine for both int and float fields.
	doc, errs := Validate(s, decode(t, `{"price": 10, "quantity": 2}`))
	require.Empty(t, errs)
	assert.Equal(t, 10.0, doc["price"])
	assert.Equal(t, int64(2), doc["quantity"])

	// A fractional number never fits an integer field.
	_, errs = Validate(s, decode(t, `{"price": 10.5, "quantity": 1.5}`))
	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Path)

	// Plain float64 trees (encoding/json without UseNumber) work the same.
	_, errs = Validate(s, map[string]any{"price": 10.5, "quantity": float64(3)})
	require.Empty(t, errs)

	// Numeric strings are rejected; there is no coercion.
	_, errs = Validate(s, map[string]any{"price": "10.5", "quantity": "3"})
	require.Len(t, errs, 2)
}

func TestValidateUnknownKeysIgnored(t *testing.T) {
	s := &RecordSchema{
		Name:   "Item",
		Fields: []FieldSpec{{Name: "name", Type: String}},
	}

	doc, errs := Validate(s, map[string]any{"name": "Laptop", "extra": 42})
	require.Empty(t, errs)
	_, present := doc["extra"]
	assert.False(t, present)
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{
		{Path: "customer.email", Kind: ErrFormatInvalid, Message: "must be a valid email address"},
		{Path: "total_price", Kind: ErrMissingField, Message: "required field is missing"},
	}
	assert.Contains(t, errs.Error(), `field "customer.email"`)
	assert.Contains(t, errs.Error(), "; ")
}

func TestMustFormats(t *testing.T) {
	MustFormats(testOrder)

	bad := &RecordSchema{
		Name:   "Customer",
		Fields: []FieldSpec{{Name: "email", Type: String, Format: "emial"}},
	}
	assert.Panics(t, func() { MustFormats(bad) })
}
