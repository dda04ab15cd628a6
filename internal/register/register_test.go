package register

import (
	"context"
	"testing"

	"github.com/aweris/nrs/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) (*Log, store.Store) {
	t.Helper()
	s, err := store.NewLocalStore(t.TempDir(), 16, 2, false)
	require.NoError(t, err)
	return New(s, "dave"), s
}

func putSnapshot(t *testing.T, s store.Store, content string) string {
	t.Helper()
	hash, err := s.Put(context.Background(), []byte(content))
	require.NoError(t, err)
	return hash
}

func TestEmptyLog(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	_, err := l.Head(ctx)
	assert.ErrorIs(t, err, store.ErrRefNotFound)

	_, err = l.Read(ctx)
	assert.ErrorIs(t, err, store.ErrRefNotFound)
}

func TestWriteAdvancesHead(t *testing.T) {
	l, s := newTestLog(t)
	ctx := context.Background()

	first, err := l.Write(ctx, putSnapshot(t, s, "v1"), nil)
	require.NoError(t, err)

	head, err := l.Head(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, head)

	second, err := l.Write(ctx, putSnapshot(t, s, "v2"), []string{first})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	head, err = l.Head(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, head)
}

func TestReadEntry(t *testing.T) {
	l, s := newTestLog(t)
	ctx := context.Background()

	snapshot := putSnapshot(t, s, "v1")
	hash, err := l.Write(ctx, snapshot, nil)
	require.NoError(t, err)

	e, err := l.ReadEntry(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, hash, e.Hash)
	assert.Equal(t, snapshot, e.Snapshot)
	assert.Empty(t, e.Parents)

	// Head read matches the pinned read.
	headEntry, err := l.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, e, headEntry)
}

func TestEntriesNewestFirst(t *testing.T) {
	l, s := newTestLog(t)
	ctx := context.Background()

	first, err := l.Write(ctx, putSnapshot(t, s, "v1"), nil)
	require.NoError(t, err)
	second, err := l.Write(ctx, putSnapshot(t, s, "v2"), []string{first})
	require.NoError(t, err)
	third, err := l.Write(ctx, putSnapshot(t, s, "v3"), []string{second})
	require.NoError(t, err)

	entries, err := l.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, third, entries[0].Hash)
	assert.Equal(t, second, entries[1].Hash)
	assert.Equal(t, first, entries[2].Hash)
}

func TestWriteHashIndependentOfParentOrder(t *testing.T) {
	ctx := context.Background()

	s1, err := store.NewLocalStore(t.TempDir(), 16, 2, false)
	require.NoError(t, err)
	s2, err := store.NewLocalStore(t.TempDir(), 16, 2, false)
	require.NoError(t, err)

	snapshot1 := putSnapshot(t, s1, "merged")
	snapshot2 := putSnapshot(t, s2, "merged")
	require.Equal(t, snapshot1, snapshot2)

	a, err := New(s1, "dave").Write(ctx, snapshot1, []string{"bb", "aa"})
	require.NoError(t, err)
	b, err := New(s2, "dave").Write(ctx, snapshot2, []string{"aa", "bb"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCollect(t *testing.T) {
	l, s := newTestLog(t)
	ctx := context.Background()

	snap1 := putSnapshot(t, s, "v1")
	first, err := l.Write(ctx, snap1, nil)
	require.NoError(t, err)
	snap2 := putSnapshot(t, s, "v2")
	second, err := l.Write(ctx, snap2, []string{first})
	require.NoError(t, err)

	objects, err := l.Collect(ctx)
	require.NoError(t, err)

	for _, hash := range []string{first, second, snap1, snap2} {
		assert.Contains(t, objects, hash)
	}
	assert.Len(t, objects, 4)
}
