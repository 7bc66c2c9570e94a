package databases

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/linesmerrill/storefront-api/config"
)

// Open builds the KeyValue backend named by conf.StoreBackend. The returned close
// func releases the backend and is never nil.
func Open(ctx context.Context, conf *config.Config) (KeyValue, func() error, error) {
	noop := func() error { return nil }

	switch conf.StoreBackend {
	case "", "mongo":
		client, err := NewClient(conf)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create new client: %w", err)
		}
		if err := client.Connect(ctx); err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		zap.S().Infow("connected to mongo", "database", conf.DatabaseName)
		return NewMongoStore(NewDatabase(conf, client)), func() error {
			return client.Disconnect(context.Background())
		}, nil
	case "redis":
		s, closeFn, err := NewRedisStore(ctx, conf.RedisAddr)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		zap.S().Infow("connected to redis", "addr", conf.RedisAddr)
		return s, closeFn, nil
	case "sqlite":
		s, err := NewSQLiteStore(conf.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		zap.S().Infow("opened sqlite store", "path", conf.SQLitePath)
		return s, s.Close, nil
	case "memory":
		zap.S().Warn("using the in-memory store, nothing survives a restart")
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", conf.StoreBackend)
	}
}
