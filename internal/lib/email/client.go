// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the provider and renders HTML bodies from
// template files on disk.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/orderkit/orderkit/internal/config"
)

// Client wraps the Resend client and the sender configuration.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client using the API key from config.
// With an empty key the client is constructed but SendEmail refuses to
// send, so callers can wire it unconditionally.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   cfg.Integration.EmailFrom,
		logger: logger,
	}
}

// SendEmail renders the named template with data and sends the result.
//
// Templates live at templates/emails/<name>.html and receive data as
// their execution context.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if c.from == "" {
		return errors.New("email sending not configured: integration.email_from is empty")
	}

	tmplPath := fmt.Sprintf("%s/%s.html", "templates/emails", templateName)

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to render email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", to)
	}

	c.logger.Info().
		Str("to", to).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}
