package databases

// go generate: mockery --name SettingsDatabase

import (
	"context"
)

const (
	logoKey      = "car-sales-brand-logo"
	reviewURLKey = "car-sales-google-review"
)

// SettingsDatabase contains the branding values, each under its own key
type SettingsDatabase interface {
	Logo(ctx context.Context) string
	SetLogo(ctx context.Context, dataURI string) error
	ClearLogo(ctx context.Context) error
	ReviewURL(ctx context.Context) string
	SetReviewURL(ctx context.Context, url string) error
}

type settingsDatabase struct {
	store *Store
}

// NewSettingsDatabase initializes a new instance of settings database with the provided store
func NewSettingsDatabase(store *Store) SettingsDatabase {
	return &settingsDatabase{
		store: store,
	}
}

func (s *settingsDatabase) Logo(ctx context.Context) string {
	return s.store.LoadString(ctx, logoKey)
}

func (s *settingsDatabase) SetLogo(ctx context.Context, dataURI string) error {
	return s.store.PutString(ctx, logoKey, dataURI)
}

func (s *settingsDatabase) ClearLogo(ctx context.Context) error {
	return s.store.Remove(ctx, logoKey)
}

func (s *settingsDatabase) ReviewURL(ctx context.Context) string {
	return s.store.LoadString(ctx, reviewURLKey)
}

func (s *settingsDatabase) SetReviewURL(ctx context.Context, url string) error {
	return s.store.PutString(ctx, reviewURLKey, url)
}
