// Package branding serves the dealership identity: the configured business details,
// the logo and the external review link. Logo and review link are read from the store
// on every call, a change is visible to the next request.
package branding

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/contact"
	"github.com/linesmerrill/storefront-api/databases"
	"github.com/linesmerrill/storefront-api/images"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

var (
	// ErrLogoNotImage is returned when the logo is not an embedded image
	ErrLogoNotImage = errors.New("logo must be an image data URI")
	// ErrLogoNotSaved is returned when the store refused the logo
	ErrLogoNotSaved = errors.New("Could not save logo.")
)

// Service reads and updates the branding settings
type Service struct {
	db       databases.SettingsDatabase
	business models.Business
}

// NewService returns a Service for business backed by db
func NewService(db databases.SettingsDatabase, business models.Business) *Service {
	return &Service{db: db, business: business}
}

// Business returns the configured business details
func (s *Service) Business() models.Business {
	return s.business
}

// Profile assembles everything a page header needs
func (s *Service) Profile(ctx context.Context) models.BrandingResponse {
	return models.BrandingResponse{
		Business:       s.business,
		Logo:           s.db.Logo(ctx),
		ReviewURL:      s.db.ReviewURL(ctx),
		WhatsAppLink:   contact.WhatsAppLink(s.business.WhatsAppNumber, ""),
		DirectionsLink: contact.DirectionsLink(s.business.Address),
	}
}

// Logo returns the saved logo data URI, or ""
func (s *Service) Logo(ctx context.Context) string {
	return s.db.Logo(ctx)
}

// ReviewURL returns the saved external review link, or ""
func (s *Service) ReviewURL(ctx context.Context) string {
	return s.db.ReviewURL(ctx)
}

// SetLogo saves dataURI as the logo. A storage failure is reported, unlike collection
// saves.
func (s *Service) SetLogo(ctx context.Context, sess session.Session, dataURI string) error {
	if err := session.Require(sess); err != nil {
		return err
	}
	if !images.IsDataURI(dataURI) {
		return ErrLogoNotImage
	}
	if err := s.db.SetLogo(ctx, dataURI); err != nil {
		zap.S().Warnw("failed to save logo", "error", err)
		return ErrLogoNotSaved
	}
	return nil
}

// ClearLogo removes the logo
func (s *Service) ClearLogo(ctx context.Context, sess session.Session) error {
	if err := session.Require(sess); err != nil {
		return err
	}
	if err := s.db.ClearLogo(ctx); err != nil {
		zap.S().Warnw("failed to clear logo", "error", err)
	}
	return nil
}

// SetReviewURL saves the trimmed external review link, an empty link hides it. A
// storage failure is only logged.
func (s *Service) SetReviewURL(ctx context.Context, sess session.Session, reviewURL string) error {
	if err := session.Require(sess); err != nil {
		return err
	}
	if err := s.db.SetReviewURL(ctx, strings.TrimSpace(reviewURL)); err != nil {
		zap.S().Warnw("failed to save review link", "error", err)
	}
	return nil
}
