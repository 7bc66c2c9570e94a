package databases

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Store layers the best-effort collection contract over a KeyValue backend. Loads
// never fail: an absent, corrupt or unreachable value reads as "nothing saved".
// Saves overwrite the whole value and swallow failures, the caller's in-memory
// state stays authoritative for the rest of the process.
type Store struct {
	kv KeyValue
}

// NewStore wraps kv
func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

// Load decodes the JSON value under key into dst and reports whether it did
func (s *Store) Load(ctx context.Context, key string, dst interface{}) bool {
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			zap.S().Warnw("storage unavailable, treating as empty", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		zap.S().Warnw("stored value is corrupt, treating as empty", "key", key, "error", err)
		return false
	}
	return true
}

// Save serializes v and overwrites the value under key
func (s *Store) Save(ctx context.Context, key string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		zap.S().Warnw("failed to serialize value, not saved", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, b); err != nil {
		zap.S().Warnw("failed to save value", "key", key, "error", err)
	}
}

// LoadString returns the raw value under key, or "" when there is none
func (s *Store) LoadString(ctx context.Context, key string) string {
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			zap.S().Warnw("storage unavailable, treating as empty", "key", key, "error", err)
		}
		return ""
	}
	return string(b)
}

// PutString overwrites the raw value under key and reports failures
func (s *Store) PutString(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, key, []byte(value))
}

// Remove deletes key
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}

func loadCollection[T any](ctx context.Context, s *Store, key string) []T {
	var items []T
	if !s.Load(ctx, key, &items) || items == nil {
		return []T{}
	}
	return items
}
