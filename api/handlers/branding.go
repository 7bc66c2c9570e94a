package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/linesmerrill/storefront-api/api"
	"github.com/linesmerrill/storefront-api/branding"
	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/images"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

// Branding exists for dependency injection purposes
type Branding struct {
	Service *branding.Service
}

// BrandingHandler returns the business details, logo, review link and contact links
func (b Branding) BrandingHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	writeJSON(w, http.StatusOK, b.Service.Profile(ctx))
}

// SetLogoHandler saves the logo from a multipart "logo" file or a JSON data URI
func (b Branding) SetLogoHandler(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if err := session.Require(s); err != nil {
		config.ErrorStatus("failed to save logo", http.StatusForbidden, w, err)
		return
	}

	var logo string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("logo")
		if err != nil {
			config.ErrorStatus("failed to read logo", http.StatusBadRequest, w, err)
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			config.ErrorStatus("failed to read logo", http.StatusBadRequest, w, err)
			return
		}
		// the logo is always embedded, it is served with every page
		logo, err = images.EncodeDataURI(header.Header.Get("Content-Type"), data)
		if err != nil {
			config.ErrorStatus("failed to read logo", errorStatus(err), w, err)
			return
		}
	} else {
		var req models.LogoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
			return
		}
		logo = req.Logo
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	if err := b.Service.SetLogo(ctx, s, logo); err != nil {
		config.ErrorStatus(err.Error(), errorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logo saved."})
}

// ClearLogoHandler removes the logo
func (b Branding) ClearLogoHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	if err := b.Service.ClearLogo(ctx, session.FromContext(r.Context())); err != nil {
		config.ErrorStatus("failed to remove logo", errorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logo removed."})
}

// SetReviewLinkHandler saves the external review site link
func (b Branding) SetReviewLinkHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	if err := b.Service.SetReviewURL(ctx, session.FromContext(r.Context()), req.ReviewURL); err != nil {
		config.ErrorStatus("failed to save review link", errorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Review link saved."})
}
