package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/storefront-api/session"
)

func newManager(t *testing.T) *session.Manager {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return session.NewManager(ctx, session.NewGate("admin"))
}

func TestManagerLoginIssuesToken(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
	req.SetBasicAuth("owner", "admin")
	token, err := m.Login(req)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	authed := httptest.NewRequest(http.MethodGet, "/api/v1/admin/session", nil)
	authed.Header.Set("Authorization", "Bearer "+token)
	assert.True(t, m.FromRequest(authed).IsAdmin())
}

func TestManagerLoginWrongPasscode(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
	req.SetBasicAuth("owner", "letmein")
	_, err := m.Login(req)
	assert.ErrorIs(t, err, session.ErrIncorrectPasscode)
}

func TestManagerLoginWithoutCredentials(t *testing.T) {
	m := newManager(t)

	_, err := m.Login(httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil))
	assert.ErrorIs(t, err, session.ErrNoCredentials)
}

func TestManagerFromRequestAnonymous(t *testing.T) {
	m := newManager(t)

	assert.False(t, m.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)).IsAdmin())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	assert.False(t, m.FromRequest(req).IsAdmin())
}

func TestManagerLogoutRevokesOnlyThatToken(t *testing.T) {
	m := newManager(t)

	login := func() string {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
		req.SetBasicAuth("owner", "admin")
		token, err := m.Login(req)
		require.NoError(t, err)
		return token
	}
	first, second := login(), login()

	withToken := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/session", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	require.NoError(t, m.Logout(withToken(first)))
	assert.False(t, m.FromRequest(withToken(first)).IsAdmin())
	assert.True(t, m.FromRequest(withToken(second)).IsAdmin())
}

func TestManagerLogoutWithoutToken(t *testing.T) {
	m := newManager(t)
	assert.ErrorIs(t, m.Logout(httptest.NewRequest(http.MethodDelete, "/", nil)), session.ErrNotAdmin)
}

func TestManagerBasicUserNameIsNotAToken(t *testing.T) {
	m := newManager(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
	req.SetBasicAuth("owner", "admin")
	token, err := m.Login(req)
	require.NoError(t, err)

	asUser := httptest.NewRequest(http.MethodGet, "/api/v1/admin/session", nil)
	asUser.Header.Set("Authorization", "Bearer owner")
	assert.False(t, m.FromRequest(asUser).IsAdmin())

	logout := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/session", nil)
	logout.Header.Set("Authorization", "Bearer "+token)
	require.NoError(t, m.Logout(logout))
	assert.False(t, m.FromRequest(logout).IsAdmin())
	assert.False(t, m.FromRequest(asUser).IsAdmin())
}

func TestManagerRepeatedLoginChecksPasscode(t *testing.T) {
	m := newManager(t)

	ok := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
	ok.SetBasicAuth("owner", "admin")
	_, err := m.Login(ok)
	require.NoError(t, err)

	wrong := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", nil)
	wrong.SetBasicAuth("owner", "letmein")
	_, err = m.Login(wrong)
	assert.ErrorIs(t, err, session.ErrIncorrectPasscode)
}
