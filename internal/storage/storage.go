// Package storage provides the key-value persistence used by the cart and
// the order history. Every backend stores opaque string values under string
// keys; callers own the encoding.
package storage

import (
	"context"
	"fmt"
)

// Store is a durable key-value store.
type Store interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Backend names accepted by configuration.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// ValidateKey rejects keys that no backend can store.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	return nil
}
