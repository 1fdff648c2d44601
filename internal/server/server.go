package server

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	awsclient "github.com/marketplace/invoicing/internal/client/aws"
	"github.com/marketplace/invoicing/internal/client/email"
	"github.com/marketplace/invoicing/internal/client/payment"
	"github.com/marketplace/invoicing/internal/client/render"
	"github.com/marketplace/invoicing/internal/config"
	"github.com/marketplace/invoicing/internal/db"
	_ "github.com/marketplace/invoicing/internal/docs"
	"github.com/marketplace/invoicing/internal/handlers"
	"github.com/marketplace/invoicing/internal/helpers"
	"github.com/marketplace/invoicing/internal/interfaces"
	"github.com/marketplace/invoicing/internal/logger"
	"github.com/marketplace/invoicing/internal/middleware"
	"github.com/marketplace/invoicing/internal/services"
)

// localArtifactRoute serves artifacts written by the file store when no bucket is configured.
const localArtifactRoute = "/artifacts"

// Handler Definitions
var (
	invoiceHandler *handlers.InvoiceHandler
	healthHandler  *handlers.HealthHandler
	rateLimiter    *middleware.RateLimiter

	appConfig *config.Config
	connPool  *pgxpool.Pool
)

// Bootstrap loads .env, validates STAGE, initialises the logger and resolves the configuration.
func Bootstrap(ctx context.Context) (*config.Config, error) {
	stage, err := config.LoadStage()
	if err != nil {
		return nil, err
	}

	logger.InitLogger(stage)
	logger.Info("Initializing invoicing for stage", zap.String("stage", stage))

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS Secrets Manager client: %w", err)
	}

	cfg, err := config.Load(ctx, stage, secretsClient)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewStore connects to Postgres and applies the schema, or falls back to the in-memory store
// when no DATABASE_URL is configured. The returned pool is nil for the in-memory store.
func NewStore(ctx context.Context, cfg *config.Config) (db.Store, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Stage != helpers.StageLocal {
			return nil, nil, fmt.Errorf("a database is required for stage %s", cfg.Stage)
		}
		logger.Warn("DATABASE_URL not set, using the in-memory store")
		return db.NewMemoryStore(), nil, nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to parse database connection string: %w", err)
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return db.NewSQLStore(pool), pool, nil
}

// NewArtifactStore returns the S3 store when ARTIFACT_BUCKET is set, otherwise a local directory store.
func NewArtifactStore(ctx context.Context, cfg *config.Config) (interfaces.ArtifactStore, error) {
	if cfg.ArtifactBucket != "" {
		return awsclient.NewS3ArtifactStore(ctx, awsclient.S3ArtifactStoreConfig{
			Bucket:        cfg.ArtifactBucket,
			Region:        cfg.ArtifactRegion,
			PublicBaseURL: cfg.ArtifactBaseURL,
		})
	}
	return render.NewFileArtifactStore(cfg.ArtifactDir, strings.TrimSuffix(cfg.ArtifactBaseURL, "/")), nil
}

// NewMailer returns the Resend mailer, or a log-only mailer in the local stage without an API key.
func NewMailer(cfg *config.Config) interfaces.Mailer {
	if cfg.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY not set, invoice emails will only be logged")
		return email.NewLogMailer(logger.Log)
	}
	return email.NewResendMailer(cfg.ResendAPIKey, cfg.FromEmail, cfg.FromName, logger.Log)
}

// NewInvoiceService wires the invoice service and its collaborators around store.
func NewInvoiceService(ctx context.Context, cfg *config.Config, store db.Store) (*services.InvoiceService, error) {
	artifacts, err := NewArtifactStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	serviceConfig := services.InvoiceServiceConfig{
		Store: store,
		Renderer: render.NewPDFRenderer(artifacts, render.PDFRendererConfig{
			SellerName: cfg.SellerName,
			Currency:   cfg.Currency,
			KeyPrefix:  cfg.ArtifactPrefix,
		}, logger.Log),
		Mailer:         NewMailer(cfg),
		ListingSource:  services.NewDBListingSource(store),
		Logger:         logger.Log,
		DefaultDueDays: cfg.DefaultDueDays,
		RenderOnCreate: cfg.RenderOnCreate,
	}

	if cfg.StripeAPIKey != "" {
		serviceConfig.PaymentGateway = payment.NewStripeGateway(cfg.StripeAPIKey, payment.StripeGatewayConfig{
			Currency:   cfg.Currency,
			SuccessURL: cfg.PaymentSuccessURL,
			CancelURL:  cfg.PaymentCancelURL,
		}, logger.Log)
	} else {
		logger.Info("STRIPE_API_KEY not set, invoices are sent without payment links")
	}

	if cfg.EventQueueURL != "" {
		publisher, err := awsclient.NewSQSPublisher(ctx, cfg.EventQueueURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		serviceConfig.EventPublisher = publisher
	}

	return services.NewInvoiceService(serviceConfig), nil
}

// InitializeHandlers builds every dependency of the HTTP API.
func InitializeHandlers() {
	ctx := context.Background()

	cfg, err := Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	appConfig = cfg

	store, pool, err := NewStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}
	connPool = pool

	if cfg.ArtifactBucket == "" && cfg.ArtifactBaseURL == "" {
		cfg.ArtifactBaseURL = fmt.Sprintf("http://localhost:%s%s", cfg.Port, localArtifactRoute)
	}

	invoiceService, err := NewInvoiceService(ctx, cfg, store)
	if err != nil {
		logger.Fatal("Failed to initialize invoice service", zap.Error(err))
	}

	invoiceHandler = handlers.NewInvoiceHandler(invoiceService)
	if pool != nil {
		healthHandler = handlers.NewHealthHandler(pool)
	} else {
		healthHandler = handlers.NewHealthHandler(nil)
	}
	rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

// InitializeRoutes registers middleware and routes on router
func InitializeRoutes(router *gin.Engine) {
	RegisterRoutes(router, invoiceHandler, healthHandler, rateLimiter)

	if appConfig != nil && appConfig.ArtifactBucket == "" {
		router.Static(localArtifactRoute, appConfig.ArtifactDir)
	}
}

// RegisterRoutes mounts the invoicing API on router
func RegisterRoutes(router *gin.Engine, invoices *handlers.InvoiceHandler, health *handlers.HealthHandler, limiter *middleware.RateLimiter) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", health.Health)

	v1 := router.Group("/api/v1")
	{
		// Totals preview does not touch stored invoices
		v1.POST("/invoices/preview", invoices.PreviewInvoice)

		protected := v1.Group("/")
		protected.Use(middleware.RequireUser())
		{
			invoiceRoutes := protected.Group("/invoices")
			{
				invoiceRoutes.POST("", invoices.CreateInvoice)
				invoiceRoutes.GET("", invoices.ListInvoices)
				invoiceRoutes.GET("/:invoice_id", invoices.GetInvoice)
				invoiceRoutes.PUT("/:invoice_id", invoices.UpdateInvoice)
				invoiceRoutes.POST("/:invoice_id/notes", invoices.AppendNotes)
				invoiceRoutes.GET("/:invoice_id/totals", invoices.GetInvoiceTotals)
				invoiceRoutes.POST("/:invoice_id/render", invoices.RenderInvoice)
				invoiceRoutes.POST("/:invoice_id/send", invoices.SendInvoice)
				invoiceRoutes.GET("/:invoice_id/download", invoices.DownloadInvoice)
				invoiceRoutes.POST("/:invoice_id/void", invoices.VoidInvoice)
			}
		}
	}
}

// Port returns the configured listen port
func Port() string {
	if appConfig == nil {
		return "8000"
	}
	return appConfig.Port
}

// Shutdown releases the rate limiter and the database pool
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if connPool != nil {
		connPool.Close()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = splitAndTrim(originsEnv)
	}

	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	} else {
		corsConfig.AllowMethods = splitAndTrim(methodsEnv)
	}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-User-ID", middleware.CorrelationIDHeader}
	} else {
		corsConfig.AllowHeaders = splitAndTrim(headersEnv)
	}

	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}
	if exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS"); exposedHeadersEnv != "" {
		corsConfig.ExposeHeaders = splitAndTrim(exposedHeadersEnv)
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
