package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	httpclient "github.com/marketplace/invoicing/internal/client/http"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/types/business"
)

// EmailSender is the part of the resend client the mailer uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer delivers invoice emails through Resend.
type ResendMailer struct {
	sender    EmailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
	retry     *httpclient.RetryConfig
}

var _ interfaces.Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a mailer backed by the Resend API.
func NewResendMailer(apiKey, fromEmail, fromName string, logger *zap.Logger) *ResendMailer {
	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(20*time.Second),
		httpclient.WithMiddleware(httpclient.LoggingMiddleware()),
		httpclient.WithMiddleware(httpclient.StatusRecorderMiddleware()),
	)
	client := resend.NewCustomClient(httpClient, apiKey)
	return NewResendMailerWithSender(client.Emails, fromEmail, fromName, logger)
}

// NewResendMailerWithSender creates a mailer over an existing sender.
func NewResendMailerWithSender(sender EmailSender, fromEmail, fromName string, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		sender:    sender,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		retry:     httpclient.DefaultRetryConfig(),
	}
}

// WithRetryConfig overrides the retry policy.
func (m *ResendMailer) WithRetryConfig(config *httpclient.RetryConfig) *ResendMailer {
	m.retry = config
	return m
}

// SendInvoice renders the invoice email and sends it to the recipient.
func (m *ResendMailer) SendInvoice(ctx context.Context, email business.InvoiceEmail) (*business.DeliveryReceipt, error) {
	if strings.TrimSpace(email.To) == "" {
		return nil, errors.New("recipient address is required")
	}

	htmlContent, err := RenderInvoiceHTML(email)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}
	textContent, err := RenderInvoiceText(email)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	from := m.fromEmail
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    htmlContent,
		Text:    textContent,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice"},
			{Name: "invoice_number", Value: tagValue(email.InvoiceNumber)},
		},
	}

	var sent *resend.SendEmailResponse
	err = httpclient.Retry(ctx, m.retry, "resend.send", func() error {
		sendCtx, status := httpclient.WithResponseStatus(ctx)
		var sendErr error
		sent, sendErr = m.sender.SendWithContext(sendCtx, params)
		if sendErr != nil && status.IsPermanentFailure() {
			// Rejected recipients and domains fail the same way on every attempt.
			return httpclient.Permanent(fmt.Errorf("resend rejected the email (status %d): %w", status.Code(), sendErr))
		}
		return sendErr
	})
	if err != nil {
		m.logger.Error("failed to send invoice email",
			zap.Error(err),
			zap.String("to", email.To),
			zap.String("invoice_number", email.InvoiceNumber))
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("invoice email sent successfully",
		zap.String("email_id", sent.Id),
		zap.String("to", email.To),
		zap.String("invoice_number", email.InvoiceNumber))

	return &business.DeliveryReceipt{Success: true, MessageID: sent.Id}, nil
}

var invoiceHTMLTemplate = template.Must(template.New("invoice_html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <p>{{if .RecipientName}}Hello {{.RecipientName}},{{else}}Hello,{{end}}</p>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
  <p>Invoice <strong>{{.InvoiceNumber}}</strong> for <strong>{{.Title}}</strong> is ready.</p>
  <table cellpadding="4">
    <tr><td>Amount due</td><td><strong>{{.Total}}</strong></td></tr>
    <tr><td>Due date</td><td>{{.DueDate.Format "2006-01-02"}}</td></tr>
  </table>
  {{if .ArtifactURL}}<p><a href="{{.ArtifactURL}}">Download invoice (PDF)</a></p>{{end}}
  {{if .PaymentURL}}<p><a href="{{.PaymentURL}}">Pay online</a></p>{{end}}
</body>
</html>`))

var invoiceTextTemplate = texttemplate.Must(texttemplate.New("invoice_text").Parse(`{{if .RecipientName}}Hello {{.RecipientName}},{{else}}Hello,{{end}}
{{if .Message}}
{{.Message}}
{{end}}
Invoice {{.InvoiceNumber}} for {{.Title}} is ready.
Amount due: {{.Total}}
Due date: {{.DueDate.Format "2006-01-02"}}
{{if .ArtifactURL}}Download: {{.ArtifactURL}}
{{end}}{{if .PaymentURL}}Pay online: {{.PaymentURL}}
{{end}}`))

// RenderInvoiceHTML executes the HTML invoice email template.
func RenderInvoiceHTML(email business.InvoiceEmail) (string, error) {
	var buf bytes.Buffer
	if err := invoiceHTMLTemplate.Execute(&buf, email); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderInvoiceText executes the plain text invoice email template.
func RenderInvoiceText(email business.InvoiceEmail) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTextTemplate.Execute(&buf, email); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// tagValue keeps Resend tag values within the allowed ASCII letters, numbers, underscores and dashes.
func tagValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, v)
}
