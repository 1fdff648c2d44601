package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	awsclient "github.com/marketplace/invoicing/internal/client/aws"
	"github.com/marketplace/invoicing/internal/client/payment"
	"github.com/marketplace/invoicing/internal/helpers"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/server"
)

// WebhookQueue accepts verified webhook events for asynchronous processing
type WebhookQueue interface {
	SendJSON(ctx context.Context, body interface{}, attributes map[string]string) error
}

// Application holds all dependencies for the webhook receiver Lambda handler
type Application struct {
	parser *payment.WebhookParser
	queue  WebhookQueue
}

// HandleAPIGatewayRequest verifies a payment provider webhook and queues it for the processor
func (app *Application) HandleAPIGatewayRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Info("Webhook receiver handling API Gateway request",
		zap.String("path", request.Path),
		zap.String("method", request.HTTPMethod))

	provider := request.PathParameters["provider"]
	if provider == "" {
		return jsonResponse(http.StatusBadRequest, `{"error": "provider not specified"}`), nil
	}
	if provider != "stripe" {
		logger.Error("Unsupported provider", zap.String("provider", provider))
		return jsonResponse(http.StatusBadRequest, `{"error": "unsupported provider"}`), nil
	}

	signatureHeader := headerValue(request.Headers, "Stripe-Signature")
	if signatureHeader == "" {
		logger.Error("Missing signature header", zap.String("provider", provider))
		return jsonResponse(http.StatusBadRequest, `{"error": "missing signature header"}`), nil
	}

	webhookEvent, err := app.parser.Parse([]byte(request.Body), signatureHeader)
	if err != nil {
		logger.Error("Failed to handle webhook",
			zap.String("provider", provider),
			zap.Error(err))
		return jsonResponse(http.StatusBadRequest, `{"error": "webhook validation failed"}`), nil
	}

	if !webhookEvent.SettlesInvoice() {
		logger.Info("Ignoring webhook event that does not settle an invoice",
			zap.String("event_type", webhookEvent.EventType),
			zap.String("event_id", webhookEvent.ProviderEventID))
		return jsonResponse(http.StatusOK, `{"status": "ignored"}`), nil
	}

	if err := app.queueWebhookEvent(ctx, webhookEvent); err != nil {
		logger.Error("Failed to queue webhook event",
			zap.String("provider", provider),
			zap.String("event_id", webhookEvent.ProviderEventID),
			zap.Error(err))
		return jsonResponse(http.StatusInternalServerError, `{"error": "failed to queue event"}`), nil
	}

	logger.Info("Successfully queued webhook",
		zap.String("provider", provider),
		zap.String("event_type", webhookEvent.EventType),
		zap.String("event_id", webhookEvent.ProviderEventID),
		zap.String("invoice_id", webhookEvent.InvoiceID.String()))

	return jsonResponse(http.StatusOK, `{"status": "received"}`), nil
}

// queueWebhookEvent sends the webhook event to SQS for processing
func (app *Application) queueWebhookEvent(ctx context.Context, webhookEvent payment.WebhookEvent) error {
	// The processor only needs the parsed fields.
	webhookEvent.RawData = nil

	if err := app.queue.SendJSON(ctx, webhookEvent, map[string]string{
		"Provider":  webhookEvent.Provider,
		"EventType": webhookEvent.EventType,
		"InvoiceID": webhookEvent.InvoiceID.String(),
	}); err != nil {
		return fmt.Errorf("failed to queue webhook event %s: %w", webhookEvent.ProviderEventID, err)
	}
	return nil
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func jsonResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

func main() {
	ctx := context.Background()

	cfg, err := server.Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger.Info("Lambda Cold Start: Initializing webhook receiver", zap.String("stage", cfg.Stage))
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.StripeWebhookSecret == "" {
		logger.Fatal("STRIPE_WEBHOOK_SECRET is required")
	}

	if cfg.Stage == helpers.StageLocal && cfg.WebhookQueueURL == "" {
		logger.Info("Webhook receiver initialized in local mode without a queue")
		return
	}
	if cfg.WebhookQueueURL == "" {
		logger.Fatal("PAYMENT_WEBHOOK_QUEUE_URL environment variable is required for deployed stages")
	}

	queue, err := awsclient.NewSQSPublisher(ctx, cfg.WebhookQueueURL)
	if err != nil {
		logger.Fatal("Failed to initialize SQS publisher", zap.Error(err))
	}

	app := &Application{
		parser: payment.NewWebhookParser(cfg.StripeWebhookSecret, logger.Log),
		queue:  queue,
	}

	lambda.Start(app.HandleAPIGatewayRequest)
}
