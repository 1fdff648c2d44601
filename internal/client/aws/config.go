package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadConfig loads the default AWS configuration chain.
// AWS_ENDPOINT_URL points the clients at a local emulator. Static credentials
// from AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY are used only in that case.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		key := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if key == "" {
			key, secret = "test", "test"
		}
		opts = append(opts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
			config.WithBaseEndpoint(endpoint),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}
