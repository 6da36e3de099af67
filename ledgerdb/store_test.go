package ledgerdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		if store.db != nil {
			store.Close()
		}
	})
	return store
}

func TestForkIsolation(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("k1"), []byte("v1"))

	// the fork sees its own pending write
	value, err := fork.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	// a snapshot taken while the fork is in flight sees nothing
	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	value, err = snapshot.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Nil(t, value)
	snapshot.Release()

	require.NoError(t, store.Commit(fork))

	snapshot, err = store.NewSnapshot()
	require.NoError(t, err)
	value, err = snapshot.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
	snapshot.Release()
}

func TestForkDiscard(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("k1"), []byte("v1"))
	fork.Release()

	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	value, err := snapshot.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSnapshotImmutable(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("k1"), []byte("v1"))
	require.NoError(t, store.Commit(fork))

	// capture, then commit more on top
	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	fork, err = store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("k1"), []byte("v2"))
	fork.Put([]byte("k2"), []byte("v2"))
	require.NoError(t, store.Commit(fork))

	value, err := snapshot.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	value, err = snapshot.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestForkReadsCommittedBase(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("base"), []byte("committed"))
	require.NoError(t, store.Commit(fork))

	fork, err = store.NewFork()
	require.NoError(t, err)
	defer fork.Release()

	value, err := fork.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("committed"), value)

	// pending write shadows the committed value
	fork.Put([]byte("base"), []byte("pending"))
	value, err = fork.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pending"), value)
}

func TestMergedIterator(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte{1, 1}, []byte("a"))
	fork.Put([]byte{1, 3}, []byte("c"))
	fork.Put([]byte{2, 1}, []byte("other prefix"))
	require.NoError(t, store.Commit(fork))

	fork, err = store.NewFork()
	require.NoError(t, err)
	defer fork.Release()
	fork.Put([]byte{1, 2}, []byte("b"))
	fork.Put([]byte{1, 3}, []byte("c2")) // shadows committed

	iter := fork.NewIterator([]byte{1})
	defer iter.Release()

	var keys [][]byte
	var values []string
	for iter.Next() {
		keys = append(keys, append([]byte(nil), iter.Key()...))
		values = append(values, string(iter.Value()))
	}
	require.NoError(t, iter.Error())

	assert.Equal(t, [][]byte{{1, 1}, {1, 2}, {1, 3}}, keys)
	assert.Equal(t, []string{"a", "b", "c2"}, values)
}

func TestCommitAtomicity(t *testing.T) {
	store := newTestStore(t)

	fork, err := store.NewFork()
	require.NoError(t, err)
	fork.Put([]byte("a"), []byte("1"))
	fork.Put([]byte("b"), []byte("2"))
	require.NoError(t, store.Commit(fork))

	snapshot, err := store.NewSnapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	a, err := snapshot.Get([]byte("a"))
	require.NoError(t, err)
	b, err := snapshot.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), a)
	assert.Equal(t, []byte("2"), b)
}
