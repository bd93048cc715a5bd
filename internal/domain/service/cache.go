package service

import (
	"context"
	"time"
)

// Cache is a small TTL'd key-value cache used in front of the remote
// public-store API. A miss is reported as an empty string, not an error.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}
