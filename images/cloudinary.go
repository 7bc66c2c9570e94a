package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader uploads images to a Cloudinary folder
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader configures the client from a cloudinary:// url
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload implements Uploader and returns the secure URL of the uploaded image
func (c *CloudinaryUploader) Upload(ctx context.Context, _ string, contentType string, data []byte) (string, error) {
	if _, err := imageType(contentType, data); err != nil {
		return "", err
	}
	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: c.folder,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// UploadSignature is what a browser needs to upload straight to Cloudinary
type UploadSignature struct {
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

// Sign signs a direct upload into the configured folder at now
func (c *CloudinaryUploader) Sign(now time.Time) (UploadSignature, error) {
	timestamp := strconv.FormatInt(now.Unix(), 10)
	params := url.Values{}
	params.Set("folder", c.folder)
	params.Set("timestamp", timestamp)

	signature, err := api.SignParameters(params, c.cld.Config.Cloud.APISecret)
	if err != nil {
		return UploadSignature{}, err
	}
	return UploadSignature{
		Timestamp: timestamp,
		Signature: signature,
		APIKey:    c.cld.Config.Cloud.APIKey,
		CloudName: c.cld.Config.Cloud.CloudName,
		Folder:    c.folder,
	}, nil
}
