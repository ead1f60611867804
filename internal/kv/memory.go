// ABOUTME: In-memory key-value store for tests and dry runs
// ABOUTME: Records every operation and can inject write failures

package kv

import (
	"context"
	"sync"
)

// OpKind identifies a recorded write operation.
type OpKind string

const (
	OpSet    OpKind = "set"
	OpRemove OpKind = "remove"
)

// Op is one write applied (or attempted) against a MemoryStore.
type Op struct {
	Kind  OpKind
	Key   string
	Value string
}

// MemoryStore is a map-backed Store. Nothing survives the process.
type MemoryStore struct {
	mu       sync.Mutex
	data     map[string]string
	ops      []Op
	writeErr error
	readErr  error
	closed   bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", false, ErrClosed
	}
	if m.readErr != nil {
		return "", false, m.readErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.ops = append(m.ops, Op{Kind: OpSet, Key: key, Value: value})
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = value
	return nil
}

// Remove implements Store.
func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.ops = append(m.ops, Op{Kind: OpRemove, Key: key})
	if m.writeErr != nil {
		return m.writeErr
	}
	delete(m.data, key)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// FailWrites makes every subsequent Set and Remove return err. Pass nil to
// restore normal behavior.
func (m *MemoryStore) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// FailReads makes every subsequent Get return err.
func (m *MemoryStore) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Ops returns a copy of every write attempted so far, in order.
func (m *MemoryStore) Ops() []Op {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Op, len(m.ops))
	copy(out, m.ops)
	return out
}

// Reopen clears the closed flag so the same data can back a new journal,
// simulating a process restart against unchanged storage.
func (m *MemoryStore) Reopen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = false
}
