package aws_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsclient "github.com/marketplace/invoicing/internal/client/aws"
	httpclient "github.com/marketplace/invoicing/internal/client/http"
	"github.com/marketplace/invoicing/internal/types/business"
)

func quickRetry() *httpclient.RetryConfig {
	return &httpclient.RetryConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1, MaxElapsedTime: time.Second}
}

type fakeS3 struct {
	failures int
	calls    int
	input    *s3.PutObjectInput
	body     []byte
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("SlowDown")
	}
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3ArtifactStore_Put(t *testing.T) {
	tests := []struct {
		name     string
		config   awsclient.S3ArtifactStoreConfig
		failures int
		wantURL  string
		wantErr  bool
	}{
		{
			name:    "regional url",
			config:  awsclient.S3ArtifactStoreConfig{Bucket: "invoice-artifacts", Region: "us-east-1"},
			wantURL: "https://invoice-artifacts.s3.us-east-1.amazonaws.com/invoices/u/INV-2026-0001.pdf",
		},
		{
			name:     "public base url after a retry",
			config:   awsclient.S3ArtifactStoreConfig{Bucket: "invoice-artifacts", PublicBaseURL: "https://cdn.market.example/"},
			failures: 1,
			wantURL:  "https://cdn.market.example/invoices/u/INV-2026-0001.pdf",
		},
		{
			name:     "gives up",
			config:   awsclient.S3ArtifactStoreConfig{Bucket: "invoice-artifacts"},
			failures: 5,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeS3{failures: tt.failures}
			store := awsclient.NewS3ArtifactStoreWithClient(client, tt.config).WithRetryConfig(quickRetry())

			url, err := store.Put(context.Background(), "invoices/u/INV-2026-0001.pdf", "application/pdf", []byte("%PDF-1.3"))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SlowDown")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, url)
			assert.Equal(t, "invoice-artifacts", aws.ToString(client.input.Bucket))
			assert.Equal(t, "application/pdf", aws.ToString(client.input.ContentType))
			assert.Equal(t, "%PDF-1.3", string(client.body))
		})
	}
}

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSQSPublisher_Publish(t *testing.T) {
	client := &fakeSQS{}
	publisher := awsclient.NewSQSPublisherWithClient(client, "https://sqs.us-east-1.amazonaws.com/123/invoice-events")

	event := business.InvoiceEvent{
		Type:          "invoice.sent",
		InvoiceID:     uuid.New(),
		UserID:        uuid.New(),
		InvoiceNumber: "INV-2026-0001",
		Status:        "pending",
		TotalAmount:   33,
		OccurredAt:    time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/123/invoice-events", aws.ToString(in.QueueUrl))
	assert.Equal(t, "invoice.sent", aws.ToString(in.MessageAttributes["EventType"].StringValue))
	assert.Equal(t, "String", aws.ToString(in.MessageAttributes["InvoiceID"].DataType))

	var decoded business.InvoiceEvent
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &decoded))
	assert.Equal(t, event.InvoiceID, decoded.InvoiceID)
	assert.Equal(t, "INV-2026-0001", decoded.InvoiceNumber)
}

func TestSQSPublisher_SendJSONSkipsEmptyAttributes(t *testing.T) {
	client := &fakeSQS{}
	publisher := awsclient.NewSQSPublisherWithClient(client, "queue")

	require.NoError(t, publisher.SendJSON(context.Background(), map[string]string{"a": "b"}, map[string]string{"Provider": "stripe", "Empty": ""}))
	assert.Contains(t, client.inputs[0].MessageAttributes, "Provider")
	assert.NotContains(t, client.inputs[0].MessageAttributes, "Empty")
}

func TestSQSPublisher_Error(t *testing.T) {
	publisher := awsclient.NewSQSPublisherWithClient(&fakeSQS{err: errors.New("AccessDenied")}, "queue").WithRetryConfig(quickRetry())

	err := publisher.Publish(context.Background(), business.InvoiceEvent{Type: "invoice.created"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}

type fakeSecrets struct {
	values map[string]string
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	v, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	client := awsclient.NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{
		"arn:aws:secretsmanager:resend": "re_live_key",
	}})
	ctx := context.Background()

	t.Run("from secrets manager", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY_ARN", "arn:aws:secretsmanager:resend")
		t.Setenv("RESEND_API_KEY", "re_env_key")

		v, err := client.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "re_live_key", v)
	})

	t.Run("falls back to env when fetch fails", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY_ARN", "arn:aws:secretsmanager:missing")
		t.Setenv("RESEND_API_KEY", "re_env_key")

		v, err := client.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "re_env_key", v)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Setenv("RESEND_API_KEY_ARN", "")
		t.Setenv("RESEND_API_KEY", "")

		_, err := client.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
		require.Error(t, err)
		assert.Empty(t, client.GetOptionalSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY"))
	})
}

func TestSecretsManagerClient_GetSecretJSON(t *testing.T) {
	client := awsclient.NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{
		"arn:rds": `{"username":"invoicing","password":"s3cret"}`,
		"arn:bad": `not-json`,
	}})

	var secret struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Setenv("RDS_SECRET_ARN", "arn:rds")
	require.NoError(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))
	assert.Equal(t, "invoicing", secret.Username)

	t.Setenv("RDS_SECRET_ARN", "arn:bad")
	assert.Error(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))

	t.Setenv("RDS_SECRET_ARN", "")
	assert.Error(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))
}
