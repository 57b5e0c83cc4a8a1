package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDBKV(t *testing.T) KV {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return NewDBKV(db, zap.NewNop())
}

func TestDBKVRoundTrip(t *testing.T) {
	kv := newTestDBKV(t)

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	kv.Set("k", "v1")
	v, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	kv.Set("k", "v2") // upsert
	v, ok = kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	kv.Remove("k")
	_, ok = kv.Get("k")
	assert.False(t, ok)

	kv.Remove("k") // removing twice is fine
}

func TestMemKVRoundTrip(t *testing.T) {
	kv := NewMemKV()
	kv.Set("k", "v")
	v, ok := kv.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	kv.Remove("k")
	_, ok = kv.Get("k")
	assert.False(t, ok)
}

func TestProgressStoreOnDurableKV(t *testing.T) {
	store := NewProgressStore(newTestDBKV(t), zap.NewNop())
	store.AddWrong("a-1")
	store.AddAttemptBySubject("a")
	assert.Equal(t, []string{"a-1"}, store.WrongIDs())
	assert.Equal(t, map[string]int{"a": 1}, store.SubjectAttemptMap())
}
