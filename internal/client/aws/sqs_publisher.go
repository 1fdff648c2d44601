package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	httpclient "github.com/marketplace/invoicing/internal/client/http"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/types/business"
)

// MessageSender is the part of the SQS API used for publishing.
type MessageSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends JSON messages to an SQS queue.
type SQSPublisher struct {
	client   MessageSender
	queueURL string
	retry    *httpclient.RetryConfig
}

var _ interfaces.EventPublisher = (*SQSPublisher)(nil)

// NewSQSPublisher creates a publisher from the shared AWS configuration.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewSQSPublisherWithClient(sqs.NewFromConfig(cfg), queueURL), nil
}

// NewSQSPublisherWithClient wraps an existing SQS API.
func NewSQSPublisherWithClient(client MessageSender, queueURL string) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
		retry:    httpclient.DefaultRetryConfig(),
	}
}

// WithRetryConfig overrides the retry policy.
func (p *SQSPublisher) WithRetryConfig(config *httpclient.RetryConfig) *SQSPublisher {
	p.retry = config
	return p
}

// Publish sends an invoice lifecycle event.
func (p *SQSPublisher) Publish(ctx context.Context, event business.InvoiceEvent) error {
	return p.SendJSON(ctx, event, map[string]string{
		"EventType": event.Type,
		"InvoiceID": event.InvoiceID.String(),
		"UserID":    event.UserID.String(),
	})
}

// SendJSON marshals body and sends it with string message attributes.
func (p *SQSPublisher) SendJSON(ctx context.Context, body interface{}, attributes map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	attrs := make(map[string]types.MessageAttributeValue, len(attributes))
	for name, value := range attributes {
		if value == "" {
			continue
		}
		attrs[name] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}

	var messageID string
	err = httpclient.Retry(ctx, p.retry, "sqs.send_message", func() error {
		out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:          aws.String(p.queueURL),
			MessageBody:       aws.String(string(payload)),
			MessageAttributes: attrs,
		})
		if err != nil {
			return err
		}
		messageID = aws.ToString(out.MessageId)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Debug("Message sent to SQS",
		zap.String("queue_url", p.queueURL),
		zap.String("message_id", messageID))
	return nil
}
