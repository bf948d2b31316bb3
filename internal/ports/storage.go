package ports

import "context"

// KeyValueStore persists opaque blobs under string keys
type KeyValueStore interface {
	// Get returns the blob stored under key, or (nil, nil) when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the blob stored under key
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources
	Close() error
}
