package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marketplace/invoicing/internal/client/payment"
	"github.com/marketplace/invoicing/internal/mocks"
	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/business"
)

func record(t *testing.T, id string, event payment.WebhookEvent) events.SQSMessage {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return events.SQSMessage{MessageId: id, Body: string(body)}
}

func TestHandleSQSEvent(t *testing.T) {
	paidID := uuid.New()
	missingID := uuid.New()
	voidID := uuid.New()
	flakyID := uuid.New()

	svc := mocks.NewMockInvoiceServiceForTest(t)
	svc.EXPECT().MarkInvoicePaid(gomock.Any(), paidID).
		Return(&business.Invoice{ID: paidID, InvoiceNumber: "INV-2026-0001", Status: "paid"}, nil)
	svc.EXPECT().MarkInvoicePaid(gomock.Any(), missingID).
		Return(nil, &services.NotFoundError{Resource: "invoice", ID: missingID})
	svc.EXPECT().MarkInvoicePaid(gomock.Any(), voidID).
		Return(nil, &services.InvalidStateError{InvoiceID: voidID, Status: "void", Reason: "void invoices cannot be paid"})
	svc.EXPECT().MarkInvoicePaid(gomock.Any(), flakyID).
		Return(nil, errors.New("connection reset"))

	app := &Application{invoices: svc}

	resp, err := app.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		record(t, "m-paid", payment.WebhookEvent{EventType: "checkout.session.completed", Paid: true, InvoiceID: &paidID}),
		record(t, "m-missing", payment.WebhookEvent{EventType: "checkout.session.completed", Paid: true, InvoiceID: &missingID}),
		record(t, "m-void", payment.WebhookEvent{EventType: "checkout.session.completed", Paid: true, InvoiceID: &voidID}),
		record(t, "m-flaky", payment.WebhookEvent{EventType: "checkout.session.completed", Paid: true, InvoiceID: &flakyID}),
		record(t, "m-unpaid", payment.WebhookEvent{EventType: "checkout.session.completed", Paid: false, InvoiceID: &paidID}),
		{MessageId: "m-garbage", Body: "not json"},
	}})

	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "m-flaky", resp.BatchItemFailures[0].ItemIdentifier)
}
