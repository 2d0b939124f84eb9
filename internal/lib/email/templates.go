package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateOrderConfirmation corresponds to
	// templates/emails/order_confirmation.html
	TemplateOrderConfirmation Template = "order_confirmation"
)
