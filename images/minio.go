package images

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/config"
)

// MinioUploader puts images into an S3 compatible bucket
type MinioUploader struct {
	client *minio.Client
	bucket string
	newKey func(name string) string
}

// NewMinioUploader connects to the bucket, creating it when missing
func NewMinioUploader(ctx context.Context, conf config.MinioConfig) (*MinioUploader, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", conf.Endpoint, err)
	}

	if err := client.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, conf.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make bucket %s: %w", conf.Bucket, err)
		}
	}
	zap.S().Debugw("image bucket ready", "bucket", conf.Bucket)

	return &MinioUploader{client: client, bucket: conf.Bucket, newKey: objectKey}, nil
}

// Upload implements Uploader and returns <endpoint>/<bucket>/<key>
func (m *MinioUploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	contentType, err := imageType(contentType, data)
	if err != nil {
		return "", err
	}
	key := m.newKey(name)
	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", key, m.bucket, err)
	}
	return fmt.Sprintf("%s/%s/%s", m.client.EndpointURL().String(), m.bucket, key), nil
}

// objectKey keeps the extension of name under a fresh uuid
func objectKey(name string) string {
	return "vehicles/" + uuid.New().String() + strings.ToLower(filepath.Ext(name))
}
