// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/katalvlaran/graphrox/blobstore"
	minioblob "github.com/katalvlaran/graphrox/blobstore/minio"
	s3blob "github.com/katalvlaran/graphrox/blobstore/s3"
	"github.com/katalvlaran/graphrox/compress"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Open builds the backend described by cfg and returns a GraphStore over it.
// opts are applied after the config, so they override it.
// Zero fields of cfg take the same defaults as ParseConfig.
func Open(ctx context.Context, cfg *Config, opts ...Option) (*GraphStore, error) {
	resolved := *cfg
	cfg = &resolved
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.RateLimit.OpsPerSecond > 0 || cfg.RateLimit.BytesPerSecond > 0 {
		backend = blobstore.NewRateLimited(backend, cfg.RateLimit.OpsPerSecond, cfg.RateLimit.BytesPerSecond)
	}
	algo, _ := compress.ParseAlgorithm(cfg.Compression) // checked by Validate

	base := []Option{WithCompression(algo), WithConcurrency(cfg.Concurrency)}

	return New(backend, append(base, opts...)...), nil
}

func openBackend(ctx context.Context, cfg *Config) (blobstore.BlobStore, error) {
	switch cfg.Backend {
	case BackendLocal:
		return blobstore.NewLocalStore(cfg.Local.Root), nil
	case BackendMemory:
		return blobstore.NewMemoryStore(), nil
	case BackendMinio:
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.Secure,
			Region: cfg.Minio.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("store: minio client: %w", err)
		}
		return minioblob.NewStore(client, cfg.Minio.Bucket, cfg.Minio.Prefix), nil
	case BackendS3:
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.S3.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.S3.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("store: aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.S3.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			}
			o.UsePathStyle = cfg.S3.UsePathStyle
		})
		return s3blob.NewStore(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
}
