package database

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the environment.
//
// Supported env vars:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (static credentials when both are set)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://localhost:8000 for DynamoDB Local)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
	}

	// DynamoDB Local ignores credentials but the SDK still signs requests.
	key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if key == "" && secret == "" && os.Getenv("DYNAMODB_ENDPOINT") != "" {
		key, secret = "local", "local"
	}
	if key != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, os.Getenv("AWS_SESSION_TOKEN")),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
