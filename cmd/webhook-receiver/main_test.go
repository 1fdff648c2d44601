package main

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/client/payment"
)

const testSecret = "whsec_receiver_secret"

type fakeQueue struct {
	bodies     []interface{}
	attributes []map[string]string
	err        error
}

func (f *fakeQueue) SendJSON(ctx context.Context, body interface{}, attributes map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.bodies = append(f.bodies, body)
	f.attributes = append(f.attributes, attributes)
	return nil
}

func signedRequest(payload string) events.APIGatewayProxyRequest {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return events.APIGatewayProxyRequest{
		Path:           "/webhooks/stripe",
		HTTPMethod:     http.MethodPost,
		PathParameters: map[string]string{"provider": "stripe"},
		Headers:        map[string]string{"stripe-signature": signed.Header},
		Body:           string(signed.Payload),
	}
}

const invoiceID = "9b2f5c8e-1d2a-4c3b-8e7f-6a5b4c3d2e1f"

const paidSession = `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","payment_status":"paid","metadata":{"invoice_id":"` + invoiceID + `"}}}}`

func TestHandleAPIGatewayRequest(t *testing.T) {
	tests := []struct {
		name       string
		request    func() events.APIGatewayProxyRequest
		queueErr   error
		wantStatus int
		wantQueued bool
	}{
		{
			name:       "queues paid checkout session",
			request:    func() events.APIGatewayProxyRequest { return signedRequest(paidSession) },
			wantStatus: http.StatusOK,
			wantQueued: true,
		},
		{
			name: "ignores events that do not settle an invoice",
			request: func() events.APIGatewayProxyRequest {
				return signedRequest(`{"id":"evt_2","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rejects bad signature",
			request: func() events.APIGatewayProxyRequest {
				req := signedRequest(paidSession)
				req.Headers["stripe-signature"] = "t=1,v1=deadbeef"
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejects missing signature",
			request: func() events.APIGatewayProxyRequest {
				req := signedRequest(paidSession)
				req.Headers = map[string]string{}
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejects unsupported provider",
			request: func() events.APIGatewayProxyRequest {
				req := signedRequest(paidSession)
				req.PathParameters["provider"] = "paypal"
				return req
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "queue failure",
			request:    func() events.APIGatewayProxyRequest { return signedRequest(paidSession) },
			queueErr:   errors.New("throttled"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := &fakeQueue{err: tt.queueErr}
			app := &Application{
				parser: payment.NewWebhookParser(testSecret, zap.NewNop()),
				queue:  queue,
			}

			resp, err := app.HandleAPIGatewayRequest(context.Background(), tt.request())
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if !tt.wantQueued {
				assert.Empty(t, queue.bodies)
				return
			}
			require.Len(t, queue.bodies, 1)
			event, ok := queue.bodies[0].(payment.WebhookEvent)
			require.True(t, ok)
			assert.True(t, event.SettlesInvoice())
			assert.Nil(t, event.RawData)
			assert.Equal(t, invoiceID, queue.attributes[0]["InvoiceID"])
			assert.Equal(t, "checkout.session.completed", queue.attributes[0]["EventType"])
		})
	}
}
