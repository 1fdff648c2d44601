package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketplace/invoicing/internal/client/payment"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/server"
	"github.com/marketplace/invoicing/internal/services"
	"github.com/marketplace/invoicing/internal/types/business"
)

// InvoiceSettler records payments against invoices
type InvoiceSettler interface {
	MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) (*business.Invoice, error)
}

// Application holds all dependencies for the webhook processor Lambda handler
type Application struct {
	invoices InvoiceSettler
}

// HandleSQSEvent applies queued payment webhooks. Failed records are reported individually so SQS only retries those.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger.Info("Webhook processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	for _, record := range event.Records {
		if err := app.processWebhookRecord(ctx, record); err != nil {
			logger.Error("Failed to process webhook record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	logger.Info("Processed webhook records",
		zap.Int("count", len(event.Records)),
		zap.Int("failed", len(response.BatchItemFailures)))
	return response, nil
}

// processWebhookRecord processes a single SQS record containing a webhook event
func (app *Application) processWebhookRecord(ctx context.Context, record events.SQSMessage) error {
	var webhookEvent payment.WebhookEvent
	if err := json.Unmarshal([]byte(record.Body), &webhookEvent); err != nil {
		// A malformed body will never succeed, drop it.
		logger.Error("Dropping malformed webhook record",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		return nil
	}

	if !webhookEvent.SettlesInvoice() {
		logger.Debug("Skipping webhook event that does not settle an invoice",
			zap.String("event_type", webhookEvent.EventType),
			zap.String("event_id", webhookEvent.ProviderEventID))
		return nil
	}

	invoice, err := app.invoices.MarkInvoicePaid(ctx, *webhookEvent.InvoiceID)
	if err != nil {
		var notFoundErr *services.NotFoundError
		var invalidStateErr *services.InvalidStateError
		switch {
		case errors.As(err, &notFoundErr):
			logger.Warn("Payment received for unknown invoice",
				zap.String("invoice_id", webhookEvent.InvoiceID.String()),
				zap.String("event_id", webhookEvent.ProviderEventID))
			return nil
		case errors.As(err, &invalidStateErr):
			logger.Warn("Payment received for invoice that cannot be paid",
				zap.String("invoice_id", webhookEvent.InvoiceID.String()),
				zap.String("status", invalidStateErr.Status),
				zap.String("event_id", webhookEvent.ProviderEventID))
			return nil
		}
		return fmt.Errorf("failed to mark invoice %s paid: %w", webhookEvent.InvoiceID, err)
	}

	logger.Info("Invoice settled from webhook",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("event_id", webhookEvent.ProviderEventID))
	return nil
}

func main() {
	ctx := context.Background()

	cfg, err := server.Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger.Info("Lambda Cold Start: Initializing webhook processor", zap.String("stage", cfg.Stage))
	defer func() {
		_ = logger.Sync()
	}()

	store, pool, err := server.NewStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}
	if pool != nil {
		defer pool.Close()
	}

	invoiceService, err := server.NewInvoiceService(ctx, cfg, store)
	if err != nil {
		logger.Fatal("Failed to initialize invoice service", zap.Error(err))
	}

	app := &Application{invoices: invoiceService}
	lambda.Start(app.HandleSQSEvent)
}
