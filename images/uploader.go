package images

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/config"
)

// Uploader stores one image and returns the string a listing keeps for it
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Embedder keeps images inline as data URIs
type Embedder struct{}

// Upload implements Uploader
func (Embedder) Upload(_ context.Context, _ string, contentType string, data []byte) (string, error) {
	return EncodeDataURI(contentType, data)
}

// NewUploader picks Cloudinary when CLOUDINARY_URL is set, then MinIO when
// MINIO_ENDPOINT is set, else embeds images as data URIs
func NewUploader(ctx context.Context, conf *config.Config) (Uploader, error) {
	switch {
	case conf.CloudinaryURL != "":
		zap.S().Infow("uploading images to cloudinary", "folder", conf.CloudinaryFolder)
		return NewCloudinaryUploader(conf.CloudinaryURL, conf.CloudinaryFolder)
	case conf.Minio.Endpoint != "":
		zap.S().Infow("uploading images to minio", "endpoint", conf.Minio.Endpoint, "bucket", conf.Minio.Bucket)
		return NewMinioUploader(ctx, conf.Minio)
	default:
		return Embedder{}, nil
	}
}

// UploadFiles uploads each file once, in order, and returns the resulting strings in
// the same order. It stops at the first failure.
func UploadFiles(ctx context.Context, u Uploader, files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		ref, err := u.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), data)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		out = append(out, ref)
	}
	return out, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
