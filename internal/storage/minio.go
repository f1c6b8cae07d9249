package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
)

// MinioUploader stores avatars in a MinIO bucket for self-hosted
// deployments where a third-party image host is not available.
type MinioUploader struct {
	client *minio.Client
	bucket string
}

func NewMinioUploader(cfg *config.Minio) (*MinioUploader, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioUploader{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the avatar bucket when it does not exist yet.
func (u *MinioUploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{})
}

func (u *MinioUploader) Upload(ctx context.Context, filePath, contentType string) (*UploadResult, error) {
	key := uuid.NewString() + filepath.Ext(filePath)
	_, err := u.client.FPutObject(ctx, u.bucket, key, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		PublicID: key,
		URL:      fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, key),
	}, nil
}
