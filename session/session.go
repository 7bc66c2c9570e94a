// Package session holds the admin gate that every mutating operation checks.
//
// The passcode is a deterrent, not an access control: there is no hashing, no lockout
// and no rate limiting.
package session

import (
	"context"
	"errors"
)

var (
	// ErrNotAdmin is returned by every mutation attempted without an admin session
	ErrNotAdmin = errors.New("admin session required")
	// ErrIncorrectPasscode is returned when an unlock attempt does not match the passcode
	ErrIncorrectPasscode = errors.New("Incorrect passcode")
)

// Session is the acting party of a mutation
type Session interface {
	IsAdmin() bool
}

type fixed bool

func (f fixed) IsAdmin() bool { return bool(f) }

var (
	// Anonymous is a visitor session
	Anonymous Session = fixed(false)
	// Admin is an unlocked session
	Admin Session = fixed(true)
)

// Require returns ErrNotAdmin unless s is an admin session
func Require(s Session) error {
	if s == nil || !s.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session carried by ctx, or Anonymous
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(contextKey{}).(Session); ok && s != nil {
		return s
	}
	return Anonymous
}
