package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
)

// ErrNoCredentials is returned by Login when the request carries no basic auth
var ErrNoCredentials = errors.New("basic auth failed")

const adminUserName = "admin"

// TokenTTL bounds how long an issued admin token stays valid
const TokenTTL = 12 * time.Hour

// Manager issues and checks the bearer tokens of unlocked HTTP sessions. Each token is
// its own session, locking one does not affect the others.
type Manager struct {
	gate          *Gate
	authenticator auth.Authenticator
	cache         store.Cache
}

// NewManager sets up go-guardian with a basic strategy checked against the gate's
// passcode and a cached bearer strategy for issued tokens. The basic strategy is left
// uncached so the token cache only ever holds issued tokens.
func NewManager(ctx context.Context, gate *Gate) *Manager {
	m := &Manager{
		gate:          gate,
		authenticator: auth.New(),
		cache:         store.NewFIFO(ctx, TokenTTL),
	}
	basicStrategy := basic.AuthenticateFunc(m.validatePasscode)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, m.cache)

	m.authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	m.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return m
}

func (m *Manager) validatePasscode(_ context.Context, _ *http.Request, userName, password string) (auth.Info, error) {
	if !m.gate.Check(password) {
		return nil, ErrIncorrectPasscode
	}
	return auth.NewDefaultUser(userName, adminUserName, nil, nil), nil
}

// Login unlocks a new session from the request's basic auth password and returns its
// bearer token. The user name is ignored.
func (m *Manager) Login(r *http.Request) (string, error) {
	if _, _, ok := r.BasicAuth(); !ok {
		return "", ErrNoCredentials
	}
	info, err := m.authenticator.Strategy(basic.StrategyKey).Authenticate(r.Context(), r)
	if err != nil {
		zap.S().Debugw("admin unlock refused", "error", err)
		return "", ErrIncorrectPasscode
	}

	token := uuid.New().String()
	tokenStrategy := m.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, info, r); err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the request's bearer token. Revoking an unknown token is not an error.
func (m *Manager) Logout(r *http.Request) error {
	token := bearerToken(r)
	if token == "" {
		return ErrNotAdmin
	}
	tokenStrategy := m.authenticator.Strategy(bearer.CachedStrategyKey)
	return auth.Revoke(tokenStrategy, token, r)
}

// FromRequest returns Admin when the request carries a live token, else Anonymous
func (m *Manager) FromRequest(r *http.Request) Session {
	if bearerToken(r) == "" {
		return Anonymous
	}
	if _, err := m.authenticator.Strategy(bearer.CachedStrategyKey).Authenticate(r.Context(), r); err != nil {
		return Anonymous
	}
	return Admin
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
