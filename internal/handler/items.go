package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderkit/orderkit/internal/errs"
	"github.com/orderkit/orderkit/internal/schema"
	"github.com/orderkit/orderkit/internal/server"
)

// ItemsHandler serves the item endpoints: a welcome root, item creation,
// and item lookup by id.
type ItemsHandler struct {
	Handler
}

// NewItemsHandler constructs an ItemsHandler with access to shared
// dependencies.
func NewItemsHandler(s *server.Server) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
	}
}

// Root returns the welcome payload for GET /.
func (h *ItemsHandler) Root(c echo.Context) (any, error) {
	return map[string]any{
		"message": "Welcome to the orderkit API!",
	}, nil
}

// CreateItem handles POST /items. The pipeline has already validated the
// body against ItemSchema, so the handler only shapes the response: the
// validated item echoed back with a creation message.
func (h *ItemsHandler) CreateItem(c echo.Context, doc schema.Document) (any, error) {
	return map[string]any{
		"message": fmt.Sprintf("Item %s created successfully!", doc["name"]),
		"item":    doc,
	}, nil
}

// GetItem handles GET /items/:id. The id path parameter must be an
// integer; the response carries the id and its square.
func (h *ItemsHandler) GetItem(c echo.Context) (any, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, errs.NewBadRequestError("Item id must be an integer", false, nil, []errs.FieldError{
			{Field: "id", Kind: string(schema.ErrTypeMismatch), Error: "must be an integer"},
		}, nil)
	}

	return map[string]any{
		"item_id": id,
		"square":  id * id,
	}, nil
}
