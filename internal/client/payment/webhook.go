package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// ErrWebhookNotConfigured is returned when no signing secret is set.
var ErrWebhookNotConfigured = errors.New("stripe webhook secret not configured")

// WebhookEvent is the provider-neutral form of a verified payment webhook, queued for processing.
type WebhookEvent struct {
	ProviderEventID string     `json:"provider_event_id"`
	Provider        string     `json:"provider"`
	EventType       string     `json:"event_type"`
	ReceivedAt      int64      `json:"received_at"`
	InvoiceID       *uuid.UUID `json:"invoice_id,omitempty"`
	SessionID       string     `json:"session_id,omitempty"`
	Paid            bool       `json:"paid"`
	RawData         []byte     `json:"raw_data,omitempty"`
}

// SettlesInvoice reports whether the event confirms payment for an invoice.
func (e WebhookEvent) SettlesInvoice() bool {
	return e.Paid && e.InvoiceID != nil
}

// WebhookParser verifies Stripe signatures and maps checkout events.
type WebhookParser struct {
	secret string
	logger *zap.Logger
	now    func() time.Time
}

// NewWebhookParser creates a parser for the given endpoint signing secret.
func NewWebhookParser(secret string, logger *zap.Logger) *WebhookParser {
	return &WebhookParser{secret: secret, logger: logger, now: time.Now}
}

// Parse validates the signature and extracts the invoice reference from checkout session events.
// Other event types are returned without an invoice reference.
func (p *WebhookParser) Parse(requestBody []byte, signatureHeader string) (WebhookEvent, error) {
	if p.secret == "" {
		return WebhookEvent{}, ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(requestBody, signatureHeader, p.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		p.logger.Error("Webhook signature verification failed", zap.Error(err))
		return WebhookEvent{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	p.logger.Info("Received Stripe webhook event", zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))

	result := WebhookEvent{
		ProviderEventID: event.ID,
		Provider:        "stripe",
		EventType:       string(event.Type),
		ReceivedAt:      p.now().Unix(),
		RawData:         requestBody,
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			p.logger.Error("Failed to unmarshal webhook event data for checkout session", zap.String("event_type", string(event.Type)), zap.Error(err))
			return result, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		result.SessionID = session.ID
		result.Paid = session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
		result.InvoiceID = invoiceIDFromSession(&session)
	default:
		p.logger.Debug("Ignoring unhandled Stripe event type", zap.String("event_type", string(event.Type)))
	}

	return result, nil
}

func invoiceIDFromSession(session *stripe.CheckoutSession) *uuid.UUID {
	raw := session.Metadata[MetadataInvoiceID]
	if raw == "" {
		raw = session.ClientReferenceID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
