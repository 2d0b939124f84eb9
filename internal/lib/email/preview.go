package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[string]map[string]string{
	"order_confirmation": {
		"CustomerName": "John Doe",
		"OrderID":      "123",
		"TotalPrice":   "1299.99",
	},
}
