package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/images"
	"github.com/linesmerrill/storefront-api/session"
)

// CloudinaryHandler handles Cloudinary related requests
type CloudinaryHandler struct {
	Uploader images.Uploader
}

// GenerateSignature signs a direct browser upload into the configured Cloudinary folder
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	if err := session.Require(session.FromContext(r.Context())); err != nil {
		config.ErrorStatus("failed to generate signature", http.StatusForbidden, w, err)
		return
	}
	cld, ok := c.Uploader.(*images.CloudinaryUploader)
	if !ok {
		config.ErrorStatus("failed to generate signature", http.StatusNotFound, w, errors.New("cloudinary is not configured"))
		return
	}

	signature, err := cld.Sign(time.Now())
	if err != nil {
		config.ErrorStatus("failed to generate signature", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, signature)
}
