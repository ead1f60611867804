// ABOUTME: Durable key-value store contract used by the journal
// ABOUTME: String keys and values with get/set/remove; absent keys are not errors

package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a store that has been closed.
var ErrClosed = errors.New("kv store closed")

// Store is durable string-keyed blob storage.
type Store interface {
	// Get returns the stored value. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites any prior value for key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}

// Compactor is implemented by backends that can reclaim space after large
// deletions.
type Compactor interface {
	Compact() error
}
