package minioclient

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const probeTimeout = 5 * time.Second

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	// Bucket is probed on startup so bad credentials fail fast.
	Bucket string
}

// New connects to MinIO and checks that the bucket is reachable. A missing
// bucket is not an error; the store creates it on first use.
func New(ctx context.Context, cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := client.BucketExists(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("probe bucket %q at %s: %w", cfg.Bucket, cfg.Endpoint, err)
	}

	return client, nil
}
