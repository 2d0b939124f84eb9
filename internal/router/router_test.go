package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkit/orderkit/internal/config"
	"github.com/orderkit/orderkit/internal/errs"
	"github.com/orderkit/orderkit/internal/handler"
	"github.com/orderkit/orderkit/internal/logger"
	"github.com/orderkit/orderkit/internal/middleware"
	"github.com/orderkit/orderkit/internal/router"
	"github.com/orderkit/orderkit/internal/server"
	"github.com/orderkit/orderkit/internal/service"
)

// newTestRouter builds the full HTTP stack with no redis and no New
// Relic, so requests run through the real middleware and validation
// pipeline.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.ServiceName = "orderkit"
	cfg.Observability.Environment = "test"

	log := zerolog.Nop()
	srv := &server.Server{
		Config:        cfg,
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}

	services, err := service.NewServices(srv)
	require.NoError(t, err)

	return router.New(middleware.NewMiddlewares(srv), handler.NewHandlers(srv, services))
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	return httpErr
}

const validOrder = `{
	"order_id": 123,
	"customer": {
		"name": "Jane Doe",
		"email": "jane@example.com"
	},
	"shipping_address": {
		"street": "1 Main St",
		"city": "Springfield",
		"postal_code": "12345",
		"country": "US"
	},
	"items": [
		{"name": "Widget", "price": 9.99, "quantity": 2},
		{"name": "Gadget", "price": 29.99}
	],
	"total_price": 49.97
}`

func TestRootWelcome(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the orderkit API!", decodeBody(t, rec)["message"])
}

func TestCreateOrder(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/orders", validOrder)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Order 123 received", body["message"])

	order := body["order"].(map[string]any)
	assert.Equal(t, float64(123), order["order_id"])

	customer := order["customer"].(map[string]any)
	assert.Equal(t, "jane@example.com", customer["email"])
	_, present := customer["phone"]
	assert.False(t, present, "omitted optional field must not appear in output")

	items := order["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])
	assert.Equal(t, float64(1), items[1].(map[string]any)["quantity"], "quantity defaults to 1")
}

func TestCreateOrderInvalidEmail(t *testing.T) {
	e := newTestRouter(t)

	body := strings.Replace(validOrder, "jane@example.com", "not-an-email", 1)
	rec := doJSON(t, e, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	httpErr := decodeError(t, rec)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "customer.email", httpErr.Errors[0].Field)
	assert.Equal(t, "format_invalid", httpErr.Errors[0].Kind)
}

func TestCreateOrderListElementError(t *testing.T) {
	e := newTestRouter(t)

	body := strings.Replace(validOrder, `"price": 29.99`, `"price": "29.99"`, 1)
	rec := doJSON(t, e, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	httpErr := decodeError(t, rec)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "items[1].price", httpErr.Errors[0].Field)
	assert.Equal(t, "type_mismatch", httpErr.Errors[0].Kind)
}

func TestCreateOrderAggregatesErrors(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/orders", `{
		"customer": {"name": "Jane Doe", "email": "not-an-email"},
		"shipping_address": {
			"street": "1 Main St",
			"city": "Springfield",
			"postal_code": "12345",
			"country": "US"
		},
		"items": [{"name": "Widget", "price": "free"}],
		"total_price": 49.97
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Errors come back in schema declaration order, all of them at once.
	httpErr := decodeError(t, rec)
	require.Len(t, httpErr.Errors, 3)
	assert.Equal(t, "order_id", httpErr.Errors[0].Field)
	assert.Equal(t, "missing_field", httpErr.Errors[0].Kind)
	assert.Equal(t, "customer.email", httpErr.Errors[1].Field)
	assert.Equal(t, "format_invalid", httpErr.Errors[1].Kind)
	assert.Equal(t, "items[0].price", httpErr.Errors[2].Field)
	assert.Equal(t, "type_mismatch", httpErr.Errors[2].Kind)
}

func TestCreateOrderMalformedJSON(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/orders", `{"order_id": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	httpErr := decodeError(t, rec)
	assert.Equal(t, "Request body must be a valid JSON object", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestCreateItem(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/items", `{"name": "Widget", "price": 9.99}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Item Widget created successfully!", body["message"])

	item := body["item"].(map[string]any)
	assert.Equal(t, "Widget", item["name"])
	assert.Equal(t, 9.99, item["price"])
}

func TestCreateItemMissingField(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/items", `{"name": "Widget"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	httpErr := decodeError(t, rec)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "price", httpErr.Errors[0].Field)
	assert.Equal(t, "missing_field", httpErr.Errors[0].Kind)
}

func TestGetItem(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/items/7", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["item_id"])
	assert.Equal(t, float64(49), body["square"])
}

func TestGetItemBadID(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/items/seven", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	httpErr := decodeError(t, rec)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
	assert.Equal(t, "type_mismatch", httpErr.Errors[0].Kind)
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestHealthWithoutRedis(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
}
