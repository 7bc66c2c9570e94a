package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/models"
	"github.com/linesmerrill/storefront-api/session"
)

// MiddlewareSessions is a struct that holds the admin session manager
type MiddlewareSessions struct {
	Sessions *session.Manager
	Metrics  *Metrics
}

// Middleware resolves the admin session of the request and stores it in the request
// context. Requests without a live token continue as visitors, the handlers decide
// what a visitor may do.
func (m MiddlewareSessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		s := m.Sessions.FromRequest(r)
		if s.IsAdmin() {
			zap.S().Debugw("admin session", "url", r.URL.Path)
		}
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
	})
}

// CreateToken unlocks an admin session from the basic auth passcode and returns its
// bearer token
func (m MiddlewareSessions) CreateToken(w http.ResponseWriter, r *http.Request) {
	token, err := m.Sessions.Login(r)
	if err != nil {
		m.Metrics.AdminUnlock(false)
		if errors.Is(err, session.ErrNoCredentials) {
			config.ErrorStatus("basic auth failed", http.StatusUnauthorized, w, err)
			return
		}
		config.ErrorStatus(session.ErrIncorrectPasscode.Error(), http.StatusUnauthorized, w, err)
		return
	}
	m.Metrics.AdminUnlock(true)

	b, err := json.Marshal(models.SessionResponse{IsAdmin: true, Token: token})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// RevokeToken locks the admin session of the request's bearer token
func (m MiddlewareSessions) RevokeToken(w http.ResponseWriter, r *http.Request) {
	if err := session.Require(session.FromContext(r.Context())); err != nil {
		config.ErrorStatus("not an admin session", http.StatusForbidden, w, err)
		return
	}
	if err := m.Sessions.Logout(r); err != nil {
		config.ErrorStatus("failed to revoke token", http.StatusInternalServerError, w, err)
		return
	}
	b, _ := json.Marshal(models.SessionResponse{IsAdmin: false})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SessionStatus reports whether the request is an admin session
func (m MiddlewareSessions) SessionStatus(w http.ResponseWriter, r *http.Request) {
	b, _ := json.Marshal(models.SessionResponse{IsAdmin: session.FromContext(r.Context()).IsAdmin()})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
