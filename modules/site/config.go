package site

import (
	"context"
	"fmt"
)

// Config selects and configures the static asset source. When S3.Bucket is
// set assets are read from S3, otherwise from Dir.
type Config struct {
	Dir string   `env:"STATIC_DIR" envDefault:"./public"`
	S3  S3Config `envPrefix:"STATIC_S3_"`
}

// S3Config contains configuration for the S3 asset source.
type S3Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	Prefix         string `env:"PREFIX"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_ACCESS_KEY"`
	Endpoint       string `env:"ENDPOINT"`         // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// NewResolver builds the Resolver described by cfg.
func NewResolver(ctx context.Context, cfg Config, opts ...S3Option) (Resolver, error) {
	if cfg.S3.Bucket != "" {
		return NewS3Resolver(ctx, cfg.S3, opts...)
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("%w: either STATIC_DIR or STATIC_S3_BUCKET is required", ErrInvalidConfig)
	}
	return NewLocalResolver(cfg.Dir)
}
