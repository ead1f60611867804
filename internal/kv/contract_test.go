// ABOUTME: Shared behavioral tests every kv backend must pass
// ABOUTME: Exercises absent keys, overwrite, remove, and reopen persistence

package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract runs the contract suite against stores produced by open.
// open is called again with the same argument to simulate a restart.
func runContract(t *testing.T, open func(t *testing.T) Store, reopen func(t *testing.T) Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "journal_title", "Günlüğüm"))
		v, ok, err := s.Get(ctx, "journal_title")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Günlüğüm", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "k", "one"))
		require.NoError(t, s.Set(ctx, "k", "two"))
		v, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "k", ""))
		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "k", "v"))
		require.NoError(t, s.Remove(ctx, "k"))
		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove absent is no-op", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Remove(ctx, "never-set"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "journal_data", "[]"))
		require.NoError(t, s.Set(ctx, "journal_title", "t"))
		require.NoError(t, s.Remove(ctx, "journal_data"))
		v, ok, err := s.Get(ctx, "journal_title")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "t", v)
	})

	if reopen == nil {
		return
	}
	t.Run("survives reopen", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set(ctx, "journal_data", `[{"id":"1"}]`))
		require.NoError(t, s.Close())

		s2 := reopen(t)
		v, ok, err := s2.Get(ctx, "journal_data")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"1"}]`, v)
	})
}

func TestMemoryStoreContract(t *testing.T) {
	runContract(t, func(t *testing.T) Store {
		return NewMemoryStore()
	}, nil)
}

func TestSQLiteStoreContract(t *testing.T) {
	var path string
	open := func(t *testing.T) Store {
		path = filepath.Join(t.TempDir(), "moodlog.db")
		s, err := NewSQLiteStore(path)
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	}
	reopen := func(t *testing.T) Store {
		s, err := NewSQLiteStore(path)
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	}
	runContract(t, open, reopen)
}

func TestFileStoreContract(t *testing.T) {
	var path string
	open := func(t *testing.T) Store {
		path = filepath.Join(t.TempDir(), DefaultFileName)
		s, err := NewFileStore(path)
		require.NoError(t, err)
		return s
	}
	reopen := func(t *testing.T) Store {
		s, err := NewFileStore(path)
		require.NoError(t, err)
		return s
	}
	runContract(t, open, reopen)
}
