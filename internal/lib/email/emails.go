package email

import "fmt"

// SendOrderConfirmation sends the order confirmation email for a
// successfully validated order.
func (c *Client) SendOrderConfirmation(to, customerName string, orderID int64, totalPrice float64) error {
	data := map[string]string{
		"CustomerName": customerName,
		"OrderID":      fmt.Sprintf("%d", orderID),
		"TotalPrice":   fmt.Sprintf("%.2f", totalPrice),
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Order #%d confirmed", orderID),
		TemplateOrderConfirmation,
		data,
	)
}
