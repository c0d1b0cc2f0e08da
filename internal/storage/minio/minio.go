// Package miniostore keeps the public tree in a single MinIO bucket. Object keys
// are the public paths without the leading slash.
package miniostore

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
)

const noSuchKey = "NoSuchKey"

type store struct {
	client *minio.Client
	bucket string
}

func New(client *minio.Client, bucket string) *store {
	return &store{
		client: client,
		bucket: bucket,
	}
}

// EnsureDir makes sure the bucket exists. Object stores have no directories.
func (s *store) EnsureDir(ctx context.Context, dir string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *store) Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if size <= 0 {
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	return err
}

func (s *store) Remove(ctx context.Context, name string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == noSuchKey {
			return storage.ErrNotExist
		}
		return err
	}

	return s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
}

func (s *store) Open(ctx context.Context, name string) (io.ReadSeekCloser, *storage.Info, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == noSuchKey {
			return nil, nil, storage.ErrNotExist
		}
		return nil, nil, err
	}

	return obj, &storage.Info{
		Size:        stat.Size,
		ModTime:     stat.LastModified,
		ContentType: stat.ContentType,
	}, nil
}
