// ABOUTME: Charm KV backend, opt-in; needs a charm account and network to fetch encryption keys
// ABOUTME: Short-lived connections per operation; data is never synced to the charm server

package kv

import (
	"bytes"
	"context"
	"fmt"

	charmkv "github.com/charmbracelet/charm/kv"
)

// DefaultCharmDBName is the charm kv database name for moodlog.
const DefaultCharmDBName = "moodlog"

// CharmStore holds configuration for charm kv operations.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
//
// Opening the database fetches the account's encryption keys from the
// charm server, so every operation fails when the server is unreachable.
// The badger files themselves stay under CHARM_DATA_DIR.
type CharmStore struct {
	dbName string
}

var _ Store = (*CharmStore)(nil)

// NewCharmStore creates a charm-backed store for the named database.
// The database location follows CHARM_DATA_DIR.
func NewCharmStore(dbName string) *CharmStore {
	if dbName == "" {
		dbName = DefaultCharmDBName
	}
	return &CharmStore{dbName: dbName}
}

// open connects to the local badger database for one operation.
func (c *CharmStore) open(fn func(k *charmkv.KV) error) (err error) {
	k, err := charmkv.OpenWithDefaults(c.dbName)
	if err != nil {
		return fmt.Errorf("open charm kv %s: %w", c.dbName, err)
	}
	defer func() {
		if cerr := k.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close charm kv %s: %w", c.dbName, cerr)
		}
	}()
	return fn(k)
}

func (c *CharmStore) doReadOnly(fn func(k *charmkv.KV) error) error {
	return c.open(fn)
}

// do runs fn with write access. Nothing is pushed to the charm server;
// Sync is never called.
func (c *CharmStore) do(fn func(k *charmkv.KV) error) error {
	return c.open(fn)
}

// hasKey scans the key list rather than relying on how Get reports a
// missing key.
func hasKey(k *charmkv.KV, key []byte) (bool, error) {
	keys, err := k.Keys()
	if err != nil {
		return false, fmt.Errorf("list keys: %w", err)
	}
	for _, existing := range keys {
		if bytes.Equal(existing, key) {
			return true, nil
		}
	}
	return false, nil
}

// Get implements Store.
func (c *CharmStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err := c.doReadOnly(func(k *charmkv.KV) error {
		ok, err := hasKey(k, []byte(key))
		if err != nil || !ok {
			return err
		}
		data, err := k.Get([]byte(key))
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		value, found = string(data), true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, found, nil
}

// Set implements Store.
func (c *CharmStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.do(func(k *charmkv.KV) error {
		if err := k.Set([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Remove implements Store.
func (c *CharmStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.do(func(k *charmkv.KV) error {
		ok, err := hasKey(k, []byte(key))
		if err != nil || !ok {
			return err
		}
		if err := k.Delete([]byte(key)); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// Close is a no-op; connections close after each operation.
func (c *CharmStore) Close() error {
	return nil
}

