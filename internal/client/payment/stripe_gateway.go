package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/types/business"
)

// Metadata keys set on checkout sessions.
const (
	MetadataInvoiceID     = "invoice_id"
	MetadataInvoiceNumber = "invoice_number"
	MetadataUserID        = "user_id"
)

// CheckoutSessionCreator is the part of the Stripe client used to create hosted payment pages.
type CheckoutSessionCreator interface {
	Create(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error)
}

// StripeGatewayConfig configures checkout sessions.
type StripeGatewayConfig struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// StripeGateway creates Stripe Checkout sessions for invoice totals.
type StripeGateway struct {
	sessions CheckoutSessionCreator
	config   StripeGatewayConfig
	logger   *zap.Logger
}

var _ interfaces.PaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway creates a gateway using the Stripe API key.
func NewStripeGateway(apiKey string, config StripeGatewayConfig, logger *zap.Logger) *StripeGateway {
	client := stripe.NewClient(apiKey, nil)
	return NewStripeGatewayWithSessions(client.V1CheckoutSessions, config, logger)
}

// NewStripeGatewayWithSessions creates a gateway over an existing session creator.
func NewStripeGatewayWithSessions(sessions CheckoutSessionCreator, config StripeGatewayConfig, logger *zap.Logger) *StripeGateway {
	if config.Currency == "" {
		config.Currency = "usd"
	}
	return &StripeGateway{
		sessions: sessions,
		config:   config,
		logger:   logger,
	}
}

// CreatePaymentLink creates a one-line checkout session for the invoice total.
func (g *StripeGateway) CreatePaymentLink(ctx context.Context, invoice business.Invoice) (*business.PaymentLink, error) {
	amount := ToMinorUnits(invoice.Totals.Total)
	if amount <= 0 {
		return nil, errors.New("invoice total must be positive to create a payment link")
	}

	name := invoice.InvoiceNumber
	if invoice.Title != "" {
		name = invoice.InvoiceNumber + ": " + invoice.Title
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(invoice.ID.String()),
		CustomerEmail:     stripe.String(invoice.RecipientEmail),
		SuccessURL:        stripe.String(expandURL(g.config.SuccessURL, invoice)),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(g.config.Currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
			},
		},
		Metadata: map[string]string{
			MetadataInvoiceID:     invoice.ID.String(),
			MetadataInvoiceNumber: invoice.InvoiceNumber,
			MetadataUserID:        invoice.UserID.String(),
		},
	}
	if g.config.CancelURL != "" {
		params.CancelURL = stripe.String(expandURL(g.config.CancelURL, invoice))
	}

	session, err := g.sessions.Create(ctx, params)
	if err != nil {
		g.logger.Error("Failed to create Stripe checkout session",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	g.logger.Info("Created Stripe checkout session",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("session_id", session.ID),
		zap.Int64("amount", amount))

	return &business.PaymentLink{URL: session.URL, ProviderID: session.ID}, nil
}

// ToMinorUnits converts a money amount to cents, rounding half away from zero.
func ToMinorUnits(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}

func expandURL(template string, invoice business.Invoice) string {
	return strings.NewReplacer(
		"{invoice_id}", invoice.ID.String(),
		"{invoice_number}", invoice.InvoiceNumber,
	).Replace(template)
}
