package config

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/marketplace/invoicing/internal/constants"
	"github.com/marketplace/invoicing/internal/helpers"
)

// SecretSource resolves secrets from Secrets Manager ARNs with a plain env fallback
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetOptionalSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) string
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error
}

// Config is the resolved runtime configuration of the invoicing binaries
type Config struct {
	Stage string
	Port  string

	// DatabaseURL is empty when the in-memory store should be used.
	DatabaseURL string

	DefaultDueDays int
	RenderOnCreate bool

	SellerName     string
	Currency       string
	ArtifactPrefix string
	ArtifactBucket string
	ArtifactRegion string
	// ArtifactBaseURL serves artifacts from a CDN or, without a bucket, from the local directory.
	ArtifactBaseURL string
	ArtifactDir     string

	ResendAPIKey string
	FromEmail    string
	FromName     string

	StripeAPIKey        string
	StripeWebhookSecret string
	PaymentSuccessURL   string
	PaymentCancelURL    string

	EventQueueURL   string
	WebhookQueueURL string

	RateLimitRPS   int
	RateLimitBurst int
}

// LoadStage loads .env when present and validates STAGE, defaulting to local.
// It runs before the logger is initialised so it reports through the standard logger.
func LoadStage() (string, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		return "", fmt.Errorf("invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage, nil
}

// Load resolves the configuration for stage. Deployed stages build the DSN from the RDS secret.
func Load(ctx context.Context, stage string, secrets SecretSource) (*Config, error) {
	cfg := &Config{
		Stage:          stage,
		Port:           helpers.GetEnv("PORT", "8000"),
		DefaultDueDays: helpers.GetEnvInt("INVOICE_DEFAULT_DUE_DAYS", constants.DefaultInvoiceDueDays),
		RenderOnCreate: helpers.GetEnvBool("INVOICE_RENDER_ON_CREATE", false),

		SellerName:      helpers.GetEnv("INVOICE_SELLER_NAME", "Marketplace"),
		Currency:        helpers.GetEnv("INVOICE_CURRENCY", "usd"),
		ArtifactPrefix:  helpers.GetEnv("ARTIFACT_KEY_PREFIX", "invoices"),
		ArtifactBucket:  helpers.GetEnv("ARTIFACT_BUCKET", ""),
		ArtifactRegion:  helpers.GetEnv("AWS_REGION", ""),
		ArtifactBaseURL: helpers.GetEnv("ARTIFACT_BASE_URL", ""),
		ArtifactDir:     helpers.GetEnv("ARTIFACT_DIR", "./artifacts"),

		FromEmail: helpers.GetEnv("EMAIL_FROM_ADDRESS", "invoices@marketplace.example"),
		FromName:  helpers.GetEnv("EMAIL_FROM_NAME", "Marketplace Invoicing"),

		PaymentSuccessURL: helpers.GetEnv("PAYMENT_SUCCESS_URL", ""),
		PaymentCancelURL:  helpers.GetEnv("PAYMENT_CANCEL_URL", ""),

		EventQueueURL:   helpers.GetEnv("INVOICE_EVENTS_QUEUE_URL", ""),
		WebhookQueueURL: helpers.GetEnv("PAYMENT_WEBHOOK_QUEUE_URL", ""),

		RateLimitRPS:   helpers.GetEnvInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: helpers.GetEnvInt("RATE_LIMIT_BURST", 20),
	}

	if cfg.DefaultDueDays < 0 {
		return nil, fmt.Errorf("INVOICE_DEFAULT_DUE_DAYS must not be negative, got %d", cfg.DefaultDueDays)
	}

	dsn, err := resolveDatabaseURL(ctx, stage, secrets)
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	cfg.ResendAPIKey, err = secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil && stage != helpers.StageLocal {
		return nil, errors.Wrap(err, "failed to get Resend API key")
	}

	cfg.StripeAPIKey = secrets.GetOptionalSecretString(ctx, "STRIPE_API_KEY_ARN", "STRIPE_API_KEY")
	cfg.StripeWebhookSecret = secrets.GetOptionalSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")

	return cfg, nil
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func resolveDatabaseURL(ctx context.Context, stage string, secrets SecretSource) (string, error) {
	if stage == helpers.StageLocal {
		return secrets.GetOptionalSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL"), nil
	}

	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	if dbEndpoint == "" || dbName == "" {
		dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", errors.Wrap(err, "deployed stages need DB_HOST and DB_NAME or DATABASE_URL")
		}
		return dsn, nil
	}

	var secret rdsSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", errors.Wrap(err, "failed to retrieve or parse RDS secret")
	}
	if secret.Username == "" || secret.Password == "" {
		return "", errors.New("username or password not found in RDS secret data")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		dbEndpoint, dbName, helpers.GetEnv("DB_SSLMODE", "require")), nil
}
