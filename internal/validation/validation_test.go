package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkit/orderkit/internal/errs"
	"github.com/orderkit/orderkit/internal/schema"
)

var itemSchema = &schema.RecordSchema{
	Name: "Item",
	Fields: []schema.FieldSpec{
		{Name: "name", Type: schema.String},
		{Name: "description", Type: schema.OptionalOf(schema.String)},
		{Name: "price", Type: schema.Float},
	},
}

func newContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, `{"name": "Laptop", "price": 1299.99}`)

	doc, err := BindAndValidate(c, itemSchema)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", doc["name"])
	assert.Equal(t, 1299.99, doc["price"])
	_, present := doc["description"]
	assert.False(t, present)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(t, `{"name": 42}`)

	doc, err := BindAndValidate(c, itemSchema)
	assert.Nil(t, doc)
	require.Error(t, err)

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "type_mismatch", httpErr.Errors[0].Kind)
	assert.Equal(t, "price", httpErr.Errors[1].Field)
	assert.Equal(t, "missing_field", httpErr.Errors[1].Kind)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(t, `{"name": "Laptop"`)

	doc, err := BindAndValidate(c, itemSchema)
	assert.Nil(t, doc)
	require.Error(t, err)

	// Malformed JSON is a transport failure: plain 400, no field errors.
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Empty(t, httpErr.Errors)
}

func TestBindDocumentUsesNumber(t *testing.T) {
	c := newContext(t, `{"quantity": 3}`)

	raw, err := BindDocument(c)
	require.NoError(t, err)

	// Numbers must survive as json.Number so the schema engine can tell
	// integral from fractional values.
	_, ok := raw["quantity"].(float64)
	assert.False(t, ok)
}
