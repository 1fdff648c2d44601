package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/client/payment"
	"github.com/marketplace/invoicing/internal/types/business"
)

type fakeSessions struct {
	params *stripe.CheckoutSessionCreateParams
	err    error
}

func (f *fakeSessions) Create(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
}

func testInvoice() business.Invoice {
	return business.Invoice{
		ID:             uuid.MustParse("9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f"),
		UserID:         uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef"),
		InvoiceNumber:  "INV-2026-0001",
		RecipientEmail: "buyer@example.com",
		Title:          "Widget order",
		Totals:         business.Totals{Subtotal: 30, TaxAmount: 3, Total: 33},
	}
}

func TestStripeGateway_CreatePaymentLink(t *testing.T) {
	sessions := &fakeSessions{}
	gateway := payment.NewStripeGatewayWithSessions(sessions, payment.StripeGatewayConfig{
		SuccessURL: "https://market.example/invoices/{invoice_id}/paid",
		CancelURL:  "https://market.example/invoices/{invoice_number}",
	}, zap.NewNop())

	link, err := gateway.CreatePaymentLink(context.Background(), testInvoice())
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", link.URL)
	assert.Equal(t, "cs_test_1", link.ProviderID)

	p := sessions.params
	require.NotNil(t, p)
	assert.Equal(t, "payment", *p.Mode)
	assert.Equal(t, "https://market.example/invoices/9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f/paid", *p.SuccessURL)
	assert.Equal(t, "https://market.example/invoices/INV-2026-0001", *p.CancelURL)
	require.Len(t, p.LineItems, 1)
	assert.Equal(t, int64(3300), *p.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "usd", *p.LineItems[0].PriceData.Currency)
	assert.Equal(t, "INV-2026-0001: Widget order", *p.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, "9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f", p.Metadata[payment.MetadataInvoiceID])
}

func TestStripeGateway_CreatePaymentLinkErrors(t *testing.T) {
	t.Run("zero total", func(t *testing.T) {
		sessions := &fakeSessions{}
		gateway := payment.NewStripeGatewayWithSessions(sessions, payment.StripeGatewayConfig{}, zap.NewNop())
		inv := testInvoice()
		inv.Totals = business.Totals{}

		_, err := gateway.CreatePaymentLink(context.Background(), inv)
		require.Error(t, err)
		assert.Nil(t, sessions.params)
	})

	t.Run("stripe failure", func(t *testing.T) {
		sessions := &fakeSessions{err: errors.New("card_declined")}
		gateway := payment.NewStripeGatewayWithSessions(sessions, payment.StripeGatewayConfig{}, zap.NewNop())

		_, err := gateway.CreatePaymentLink(context.Background(), testInvoice())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "card_declined")
	})
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{33, 3300},
		{0.1 + 0.2, 30},
		{19.995, 2000},
		{1.004, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, payment.ToMinorUnits(tt.in), "input %v", tt.in)
	}
}

const testSecret = "whsec_test_secret"

func signedPayload(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return signed.Header, signed.Payload
}

func TestWebhookParser_Parse(t *testing.T) {
	invoiceID := "9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f"

	tests := []struct {
		name        string
		payload     string
		wantType    string
		wantSettles bool
		wantInvoice bool
	}{
		{
			name:        "paid checkout session",
			payload:     `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","payment_status":"paid","metadata":{"invoice_id":"` + invoiceID + `"}}}}`,
			wantType:    "checkout.session.completed",
			wantSettles: true,
			wantInvoice: true,
		},
		{
			name:        "client reference fallback",
			payload:     `{"id":"evt_2","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_2","object":"checkout.session","payment_status":"paid","client_reference_id":"` + invoiceID + `"}}}`,
			wantType:    "checkout.session.completed",
			wantSettles: true,
			wantInvoice: true,
		},
		{
			name:        "unpaid async session",
			payload:     `{"id":"evt_3","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_3","object":"checkout.session","payment_status":"unpaid","metadata":{"invoice_id":"` + invoiceID + `"}}}}`,
			wantType:    "checkout.session.completed",
			wantSettles: false,
			wantInvoice: true,
		},
		{
			name:     "unrelated event",
			payload:  `{"id":"evt_4","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`,
			wantType: "customer.created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := payment.NewWebhookParser(testSecret, zap.NewNop())
			header, body := signedPayload(t, tt.payload)

			event, err := parser.Parse(body, header)
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, event.EventType)
			assert.Equal(t, "stripe", event.Provider)
			assert.Equal(t, tt.wantSettles, event.SettlesInvoice())
			if tt.wantInvoice {
				require.NotNil(t, event.InvoiceID)
				assert.Equal(t, invoiceID, event.InvoiceID.String())
			} else {
				assert.Nil(t, event.InvoiceID)
			}
		})
	}
}

func TestWebhookParser_RejectsBadSignature(t *testing.T) {
	parser := payment.NewWebhookParser(testSecret, zap.NewNop())
	_, body := signedPayload(t, `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := parser.Parse(body, "t=1,v1=deadbeef")
	require.Error(t, err)

	_, err = payment.NewWebhookParser("", zap.NewNop()).Parse(body, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, payment.ErrWebhookNotConfigured)
}
