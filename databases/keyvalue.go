package databases

// go generate: mockery --name KeyValue

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a KeyValue backend for a key that was never set
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is the durable blob storage underneath the storefront. Every value is
// stored and replaced whole under its key.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
